package repositories

import (
	"context"
	"database/sql"
	"time"

	"dauraBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview inserts the review and refreshes the owning business's
// aggregate rating in one transaction, so two concurrent submissions cannot
// lose each other's contribution to the mean.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
INSERT INTO reviews (business_id, reviewer_name, text, rating, created_at)
VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		rev.BusinessID, rev.ReviewerName, rev.Text, rev.Rating,
		rev.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	var avg float64
	err = tx.QueryRowContext(ctx, `SELECT AVG(rating) FROM reviews WHERE business_id = ?`, rev.BusinessID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	// The business may have been deleted already; an update over zero rows is
	// fine, the review stays as an orphan.
	_, err = tx.ExecContext(ctx, `UPDATE businesses SET rating = ? WHERE id = ?`, avg, rev.BusinessID)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *ReviewRepository) GetReviewsByBusinessID(ctx context.Context, businessID int) ([]models.Review, error) {
	query := `
SELECT id, business_id, reviewer_name, text, rating, created_at
FROM reviews
WHERE business_id = ?
ORDER BY created_at DESC, id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		var createdAt string
		err := rows.Scan(&rev.ID, &rev.BusinessID, &rev.ReviewerName, &rev.Text, &rev.Rating, &createdAt)
		if err != nil {
			return nil, err
		}
		rev.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
