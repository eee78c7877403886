package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dauraBack/internal/models"
)

type BusinessRepository struct {
	DB *sql.DB
}

const businessColumns = `id, name, category, location, description, phone, email, website, hours, image, latitude, longitude, rating, created_at`

func (r *BusinessRepository) CreateBusiness(ctx context.Context, b models.Business) (int, error) {
	query := `
INSERT INTO businesses (name, category, location, description, phone, email, website, hours, image, latitude, longitude, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		b.Name, b.Category, b.Location, b.Description,
		b.Phone, b.Email, b.Website, b.Hours, b.Image,
		b.Latitude, b.Longitude,
		b.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *BusinessRepository) GetBusinesses(ctx context.Context) ([]models.Business, error) {
	query := `
SELECT ` + businessColumns + `
FROM businesses
ORDER BY created_at DESC, id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (r *BusinessRepository) GetBusinessByID(ctx context.Context, id int) (models.Business, error) {
	query := `
SELECT ` + businessColumns + `
FROM businesses
WHERE id = ?
	`
	b, err := scanBusiness(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Business{}, models.ErrBusinessNotFound
	}
	return b, err
}

// DeleteBusiness removes the row only. Reviews for the business are left in
// place, matching the original directory's behaviour.
func (r *BusinessRepository) DeleteBusiness(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM businesses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrBusinessNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (models.Business, error) {
	var b models.Business
	var rating sql.NullFloat64
	var createdAt string
	err := row.Scan(
		&b.ID, &b.Name, &b.Category, &b.Location, &b.Description,
		&b.Phone, &b.Email, &b.Website, &b.Hours, &b.Image,
		&b.Latitude, &b.Longitude, &rating, &createdAt,
	)
	if err != nil {
		return models.Business{}, err
	}
	if rating.Valid {
		b.Rating = &rating.Float64
	}
	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Business{}, err
	}
	return b, nil
}
