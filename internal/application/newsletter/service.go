package newsletter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/sns"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// Store is the subscriber persistence this service requires.
type Store interface {
	Put(ctx context.Context, s *domain.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
}

type Service interface {
	Subscribe(ctx context.Context, req domain.SubscribeRequest) (*domain.Subscriber, error)
}

type service struct {
	repo      Store
	publisher sns.Publisher // nil when no topic is configured
}

func NewService(repo Store, publisher sns.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// Subscribe stores the signup and notifies the marketing topic. Re-subscribing
// an existing address is idempotent: the stored row is returned unchanged.
func (s *service) Subscribe(ctx context.Context, req domain.SubscribeRequest) (*domain.Subscriber, error) {
	if existing, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = "landing"
	}
	sub := &domain.Subscriber{
		SubscriberID: id.New(),
		Email:        req.Email,
		Source:       source,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, sub); err != nil {
		return nil, err
	}

	// Topic publish is best-effort: the subscription succeeded once the row
	// is stored.
	if s.publisher != nil {
		payload, _ := json.Marshal(map[string]string{
			"event":  "newsletter.subscribed",
			"email":  sub.Email,
			"source": sub.Source,
		})
		if err := s.publisher.Publish(ctx, string(payload)); err != nil {
			slog.Warn("failed to publish newsletter signup", "err", err)
		}
	}

	return sub, nil
}
