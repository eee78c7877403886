package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"dauraBack/internal/models"
)

// MemoryRepository is the fixture-backed store. It serves the same contract as
// the SQLite repositories from a seeded in-memory data set, so the server can
// run demo-style with no database file (storage driver "memory").
type MemoryRepository struct {
	mu         sync.Mutex
	businesses map[int]models.Business
	reviews    map[int]models.Review
	nextBizID  int
	nextRevID  int
}

func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		businesses: make(map[int]models.Business),
		reviews:    make(map[int]models.Review),
		nextBizID:  1,
		nextRevID:  1,
	}
	r.seed()
	return r
}

func strPtr(s string) *string { return &s }

func (r *MemoryRepository) seed() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-24 * time.Hour)

	id, _ := r.CreateBusiness(ctx, models.Business{
		Name:        "Mama Zainab's Kitchen",
		Category:    "Restaurant",
		Location:    "Daura",
		Description: "Home-cooked meals and local delicacies.",
		Phone:       strPtr("0803 123 4567"),
		Hours:       strPtr("9AM - 9PM"),
		CreatedAt:   base,
	})
	r.CreateReview(ctx, models.Review{
		BusinessID:   id,
		ReviewerName: "Aisha",
		Text:         "Best tuwo in town.",
		Rating:       4,
		CreatedAt:    base.Add(time.Hour),
	})

	id, _ = r.CreateBusiness(ctx, models.Business{
		Name:        "Funtua Tech Repairs",
		Category:    "Electronics",
		Location:    "Funtua",
		Description: "Phone and laptop repairs, accessories sales.",
		Phone:       strPtr("0810 987 6543"),
		Hours:       strPtr("10AM - 6PM"),
		CreatedAt:   base.Add(time.Minute),
	})
	r.CreateReview(ctx, models.Review{
		BusinessID:   id,
		ReviewerName: "Sani",
		Text:         "Fixed my screen the same day.",
		Rating:       5,
		CreatedAt:    base.Add(time.Hour),
	})
}

func (r *MemoryRepository) CreateBusiness(ctx context.Context, b models.Business) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextBizID
	r.nextBizID++
	b.Rating = nil
	r.businesses[b.ID] = b
	return b.ID, nil
}

func (r *MemoryRepository) GetBusinesses(ctx context.Context) ([]models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	businesses := make([]models.Business, 0, len(r.businesses))
	for _, b := range r.businesses {
		businesses = append(businesses, b)
	}
	sort.Slice(businesses, func(i, j int) bool {
		if !businesses[i].CreatedAt.Equal(businesses[j].CreatedAt) {
			return businesses[i].CreatedAt.After(businesses[j].CreatedAt)
		}
		return businesses[i].ID > businesses[j].ID
	})
	return businesses, nil
}

func (r *MemoryRepository) GetBusinessByID(ctx context.Context, id int) (models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.businesses[id]
	if !ok {
		return models.Business{}, models.ErrBusinessNotFound
	}
	return b, nil
}

func (r *MemoryRepository) DeleteBusiness(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.businesses[id]; !ok {
		return models.ErrBusinessNotFound
	}
	// Reviews stay behind, same as the SQLite store.
	delete(r.businesses, id)
	return nil
}

func (r *MemoryRepository) CreateReview(ctx context.Context, rev models.Review) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = r.nextRevID
	r.nextRevID++
	r.reviews[rev.ID] = rev

	if b, ok := r.businesses[rev.BusinessID]; ok {
		var sum, count int
		for _, other := range r.reviews {
			if other.BusinessID == rev.BusinessID {
				sum += other.Rating
				count++
			}
		}
		avg := float64(sum) / float64(count)
		b.Rating = &avg
		r.businesses[rev.BusinessID] = b
	}
	return rev.ID, nil
}

func (r *MemoryRepository) GetReviewsByBusinessID(ctx context.Context, businessID int) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reviews := []models.Review{}
	for _, rev := range r.reviews {
		if rev.BusinessID == businessID {
			reviews = append(reviews, rev)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		}
		return reviews[i].ID > reviews[j].ID
	})
	return reviews, nil
}
