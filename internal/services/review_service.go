package services

import (
	"context"
	"time"

	"dauraBack/internal/models"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, rev models.Review) (int, error)
	GetReviewsByBusinessID(ctx context.Context, businessID int) ([]models.Review, error)
}

type ReviewService struct {
	ReviewsRepo ReviewRepository
}

// CreateReview persists the review; the repository also refreshes the owning
// business's aggregate rating as part of the same call.
func (s *ReviewService) CreateReview(ctx context.Context, rev models.Review) (int, error) {
	rev.CreatedAt = time.Now().UTC()
	return s.ReviewsRepo.CreateReview(ctx, rev)
}

func (s *ReviewService) GetReviewsByBusinessID(ctx context.Context, businessID int) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByBusinessID(ctx, businessID)
}
