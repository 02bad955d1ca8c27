package children

import (
	"context"
	"fmt"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// Store is the child persistence this service requires.
type Store interface {
	Put(ctx context.Context, c *domain.Child) error
	Get(ctx context.Context, childID string) (*domain.Child, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Child, error)
	Update(ctx context.Context, childID string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, childID string) error
}

type Service interface {
	Create(ctx context.Context, ownerID string, req domain.CreateChildRequest) (*domain.Child, error)
	List(ctx context.Context, ownerID string) ([]domain.Child, error)
	Get(ctx context.Context, ownerID, childID string) (*domain.Child, error)
	Update(ctx context.Context, ownerID, childID string, req domain.UpdateChildRequest) (*domain.Child, error)
	Delete(ctx context.Context, ownerID, childID string) error
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID string, req domain.CreateChildRequest) (*domain.Child, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("invalid birthdate format (want YYYY-MM-DD): %w", domain.ErrBadRequest)
	}
	if birthdate.After(time.Now()) {
		return nil, fmt.Errorf("birthdate is in the future: %w", domain.ErrBadRequest)
	}

	now := time.Now().UTC()
	c := &domain.Child{
		ChildID:   id.New(),
		OwnerID:   ownerID,
		Name:      req.Name,
		Birthdate: birthdate,
		AvatarKey: req.AvatarKey,
		Enable:    1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]domain.Child, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get fetches a child and enforces ownership: profiles are visible only to
// the account that created them.
func (s *service) Get(ctx context.Context, ownerID, childID string) (*domain.Child, error) {
	c, err := s.repo.Get(ctx, childID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, fmt.Errorf("child belongs to another account: %w", domain.ErrForbidden)
	}
	if c.Enable == 0 {
		return nil, fmt.Errorf("child not found: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, ownerID, childID string, req domain.UpdateChildRequest) (*domain.Child, error) {
	if _, err := s.Get(ctx, ownerID, childID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("invalid birthdate format (want YYYY-MM-DD): %w", domain.ErrBadRequest)
		}
		updates["birthdate"] = birthdate.Format(time.RFC3339)
	}
	if req.AvatarKey != nil {
		updates["avatar_key"] = *req.AvatarKey
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}

	if err := s.repo.Update(ctx, childID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, childID)
}

func (s *service) Delete(ctx context.Context, ownerID, childID string) error {
	if _, err := s.Get(ctx, ownerID, childID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, childID)
}
