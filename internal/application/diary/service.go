package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// Store is the diary persistence this service requires.
type Store interface {
	Put(ctx context.Context, e *domain.DiaryEntry) error
	Get(ctx context.Context, entryID string) (*domain.DiaryEntry, error)
	ListByChild(ctx context.Context, childID string) ([]domain.DiaryEntry, error)
	HardDelete(ctx context.Context, entryID string) error
}

// ChildGetter resolves child ownership so diary access stays scoped to the
// owning account.
type ChildGetter interface {
	Get(ctx context.Context, ownerID, childID string) (*domain.Child, error)
}

type Service interface {
	Create(ctx context.Context, ownerID, childID string, req domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error)
	ListByChild(ctx context.Context, ownerID, childID string) ([]domain.DiaryEntry, error)
	Delete(ctx context.Context, ownerID, entryID string) error
}

type service struct {
	repo     Store
	children ChildGetter
}

func NewService(repo Store, children ChildGetter) Service {
	return &service{repo: repo, children: children}
}

func (s *service) Create(ctx context.Context, ownerID, childID string, req domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error) {
	if _, err := s.children.Get(ctx, ownerID, childID); err != nil {
		return nil, err
	}

	e := &domain.DiaryEntry{
		EntryID:   id.New(),
		ChildID:   childID,
		OwnerID:   ownerID,
		Content:   req.Content,
		Mood:      req.Mood,
		PhotoKey:  req.PhotoKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) ListByChild(ctx context.Context, ownerID, childID string) ([]domain.DiaryEntry, error) {
	if _, err := s.children.Get(ctx, ownerID, childID); err != nil {
		return nil, err
	}
	return s.repo.ListByChild(ctx, childID)
}

func (s *service) Delete(ctx context.Context, ownerID, entryID string) error {
	e, err := s.repo.Get(ctx, entryID)
	if err != nil {
		return err
	}
	if e.OwnerID != ownerID {
		return fmt.Errorf("diary entry belongs to another account: %w", domain.ErrForbidden)
	}
	return s.repo.HardDelete(ctx, entryID)
}
