package activities

import (
	"context"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// Store is the activity library persistence this service requires.
type Store interface {
	Get(ctx context.Context, activityID string) (*domain.Activity, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Activity, error)
	Scan(ctx context.Context) ([]domain.Activity, error)
}

type Service interface {
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Activity, error)
	// Suggest builds the dashboard suggestion block for a child age (nil =
	// no age constraint).
	Suggest(ctx context.Context, ageMonths *int) (*domain.Suggestions, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(all))
	for _, a := range all {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Energy != "" && a.Energy != filter.Energy {
			continue
		}
		if filter.AgeMonths != nil && !a.SuitableForAge(*filter.AgeMonths) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	return s.repo.GetBySlug(ctx, slug)
}
