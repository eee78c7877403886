package repositories

import (
	"context"
	"database/sql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS businesses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL,
		location    TEXT NOT NULL,
		description TEXT NOT NULL,
		phone       TEXT,
		email       TEXT,
		website     TEXT,
		hours       TEXT,
		image       TEXT,
		latitude    REAL,
		longitude   REAL,
		rating      REAL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		business_id   INTEGER NOT NULL,
		reviewer_name TEXT NOT NULL,
		text          TEXT NOT NULL,
		rating        INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_business_id ON reviews (business_id)`,
}

// EnsureSchema creates the two directory tables when they are missing. There
// is deliberately no foreign key from reviews to businesses: deleting a
// business keeps its reviews around as orphans.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
