package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"dauraBack/internal/models"
)

func TestReviewRepositoryCreateReview(t *testing.T) {
	t.Run("inserts and refreshes rating in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()
		repo := &ReviewRepository{DB: db}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(1, "Aisha", "Great food", 4, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectQuery("SELECT AVG").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.0))
		mock.ExpectExec("UPDATE businesses SET rating").
			WithArgs(3.0, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := repo.CreateReview(context.Background(), models.Review{
			BusinessID:   1,
			ReviewerName: "Aisha",
			Text:         "Great food",
			Rating:       4,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 11 {
			t.Errorf("expected id 11, got %d", id)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back when the rating update fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()
		repo := &ReviewRepository{DB: db}

		boom := errors.New("disk full")
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(1, "Aisha", "Great food", 4, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectQuery("SELECT AVG").
			WithArgs(1).
			WillReturnError(boom)
		mock.ExpectRollback()

		_, err = repo.CreateReview(context.Background(), models.Review{
			BusinessID:   1,
			ReviewerName: "Aisha",
			Text:         "Great food",
			Rating:       4,
			CreatedAt:    time.Now(),
		})
		if !errors.Is(err, boom) {
			t.Errorf("expected error to propagate, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("tolerates a vanished business", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()
		repo := &ReviewRepository{DB: db}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(5, "Sani", "Still here", 5, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(12, 1))
		mock.ExpectQuery("SELECT AVG").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(5.0))
		mock.ExpectExec("UPDATE businesses SET rating").
			WithArgs(5.0, 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		id, err := repo.CreateReview(context.Background(), models.Review{
			BusinessID:   5,
			ReviewerName: "Sani",
			Text:         "Still here",
			Rating:       5,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 12 {
			t.Errorf("expected id 12, got %d", id)
		}
	})
}

func TestReviewRepositoryGetReviewsByBusinessID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &ReviewRepository{DB: db}

	columns := []string{"id", "business_id", "reviewer_name", "text", "rating", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(2, 1, "Sani", "Good", 5, "2026-08-30T12:00:00Z").
		AddRow(1, 1, "Aisha", "Okay", 3, "2026-08-29T12:00:00Z")
	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(1).
		WillReturnRows(rows)

	reviews, err := repo.GetReviewsByBusinessID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ReviewerName != "Sani" || reviews[0].Rating != 5 {
		t.Errorf("first review mismatch: %+v", reviews[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
