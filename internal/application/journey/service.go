package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// Store is the journey session persistence this service requires.
type Store interface {
	Put(ctx context.Context, s *domain.JourneySession) error
	Get(ctx context.Context, sessionID string) (*domain.JourneySession, error)
	ListByChild(ctx context.Context, childID string) ([]domain.JourneySession, error)
	Update(ctx context.Context, sessionID string, updates map[string]interface{}) error
}

// ChildGetter resolves child ownership.
type ChildGetter interface {
	Get(ctx context.Context, ownerID, childID string) (*domain.Child, error)
}

// ActivityGetter confirms the activity exists before a session starts.
type ActivityGetter interface {
	Get(ctx context.Context, activityID string) (*domain.Activity, error)
}

type Service interface {
	Start(ctx context.Context, ownerID string, req domain.StartSessionRequest) (*domain.JourneySession, error)
	Finish(ctx context.Context, ownerID, sessionID string, req domain.FinishSessionRequest) (*domain.JourneySession, error)
	Timeline(ctx context.Context, ownerID, childID string) ([]domain.JourneySession, error)
}

type service struct {
	repo       Store
	children   ChildGetter
	activities ActivityGetter
}

func NewService(repo Store, children ChildGetter, activities ActivityGetter) Service {
	return &service{repo: repo, children: children, activities: activities}
}

func (s *service) Start(ctx context.Context, ownerID string, req domain.StartSessionRequest) (*domain.JourneySession, error) {
	if _, err := s.children.Get(ctx, ownerID, req.ChildID); err != nil {
		return nil, err
	}
	if _, err := s.activities.Get(ctx, req.ActivityID); err != nil {
		return nil, err
	}

	sess := &domain.JourneySession{
		SessionID:  id.New(),
		ChildID:    req.ChildID,
		OwnerID:    ownerID,
		ActivityID: req.ActivityID,
		StartedAt:  time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Finish(ctx context.Context, ownerID, sessionID string, req domain.FinishSessionRequest) (*domain.JourneySession, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.OwnerID != ownerID {
		return nil, fmt.Errorf("session belongs to another account: %w", domain.ErrForbidden)
	}
	if sess.FinishedAt != nil {
		return nil, fmt.Errorf("session already finished: %w", domain.ErrConflict)
	}

	// The elapsed time is reported by the client timer; fall back to wall
	// clock when the client omits it (e.g. closed tab).
	elapsed := req.ElapsedSeconds
	if elapsed == 0 {
		elapsed = int(time.Since(sess.StartedAt).Seconds())
	}

	finishedAt := time.Now().UTC()
	updates := map[string]interface{}{
		"finished_at":     finishedAt.Format(time.RFC3339),
		"elapsed_seconds": elapsed,
	}
	if req.Reflection != "" {
		updates["reflection"] = req.Reflection
	}
	if req.Rating != 0 {
		updates["rating"] = req.Rating
	}
	if err := s.repo.Update(ctx, sessionID, updates); err != nil {
		return nil, err
	}

	sess.FinishedAt = &finishedAt
	sess.ElapsedSeconds = elapsed
	sess.Reflection = req.Reflection
	sess.Rating = req.Rating
	return sess, nil
}

func (s *service) Timeline(ctx context.Context, ownerID, childID string) ([]domain.JourneySession, error) {
	if _, err := s.children.Get(ctx, ownerID, childID); err != nil {
		return nil, err
	}
	return s.repo.ListByChild(ctx, childID)
}
