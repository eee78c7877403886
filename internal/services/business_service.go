package services

import (
	"context"
	"time"

	"dauraBack/internal/models"
)

// BusinessRepository is satisfied by both the SQLite store and the in-memory
// fixture store; which one backs the service is a configuration choice.
type BusinessRepository interface {
	CreateBusiness(ctx context.Context, b models.Business) (int, error)
	GetBusinesses(ctx context.Context) ([]models.Business, error)
	GetBusinessByID(ctx context.Context, id int) (models.Business, error)
	DeleteBusiness(ctx context.Context, id int) error
}

type BusinessService struct {
	BusinessRepo BusinessRepository
}

func (s *BusinessService) CreateBusiness(ctx context.Context, b models.Business) (int, error) {
	b.CreatedAt = time.Now().UTC()
	return s.BusinessRepo.CreateBusiness(ctx, b)
}

func (s *BusinessService) GetBusinesses(ctx context.Context) ([]models.Business, error) {
	return s.BusinessRepo.GetBusinesses(ctx)
}

func (s *BusinessService) GetBusinessByID(ctx context.Context, id int) (models.Business, error) {
	return s.BusinessRepo.GetBusinessByID(ctx, id)
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, id int) error {
	return s.BusinessRepo.DeleteBusiness(ctx, id)
}
