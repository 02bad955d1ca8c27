// Package mailer implements the transactional email dispatch gate: it decides
// whether an auth-event notification from the shared identity backend belongs
// to this application, and if so renders and sends exactly one email.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/smtp"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// MailLogStore records dispatch attempts. Logging is best-effort and never
// blocks or fails a dispatch.
type MailLogStore interface {
	Put(ctx context.Context, e *domain.MailLogEntry) error
}

type Service interface {
	// Handle processes one inbound event. Tenant rejection is a normal
	// outcome, not an error; errors are reserved for contract violations
	// (domain.ErrValidation) and transport failures (domain.ErrDelivery).
	Handle(ctx context.Context, event domain.NotificationEvent) (*domain.DispatchOutcome, error)
}

type ServiceDeps struct {
	Mailer  smtp.Mailer
	MailLog MailLogStore // optional
	// AppID is the single tenant tag this instance accepts.
	AppID string
}

type service struct {
	mailer  smtp.Mailer
	mailLog MailLogStore
	appID   string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		mailer:  deps.Mailer,
		mailLog: deps.MailLog,
		appID:   deps.AppID,
	}
}

func (s *service) Handle(ctx context.Context, event domain.NotificationEvent) (*domain.DispatchOutcome, error) {
	// Tenant admission is the first and only gate. The comparison is exact
	// and case-sensitive; an absent tag never matches. No template logic may
	// run for foreign events.
	if event.TenantTag != s.appID {
		slog.Info("mail dispatch rejected",
			"reason", domain.ReasonTenantMismatch,
			"tenant_tag", event.TenantTag,
			"event_kind", event.Kind,
		)
		return &domain.DispatchOutcome{
			Status: domain.DispatchRejected,
			Reason: domain.ReasonTenantMismatch,
		}, nil
	}

	if event.UserEmail == "" {
		return nil, fmt.Errorf("event missing user.email: %w", domain.ErrValidation)
	}

	msg, err := Render(event)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	slog.Info("mail dispatch accepted",
		"tenant_tag", event.TenantTag,
		"event_kind", event.Kind,
	)

	// Exactly one transport call per accepted event. No retries and no
	// dedup: duplicate sends are worse than missed ones for auth email, and
	// every flow lets the user re-request.
	messageID, sendErr := s.mailer.Send(ctx, msg)
	if sendErr != nil {
		s.log(event, msg, "", "failed", sendErr.Error())
		return nil, fmt.Errorf("%w: %v", domain.ErrDelivery, sendErr)
	}

	s.log(event, msg, messageID, "sent", "")
	return &domain.DispatchOutcome{
		Status:    domain.DispatchDispatched,
		Reason:    domain.ReasonAccepted,
		MessageID: messageID,
	}, nil
}

// log writes a mail log row. The rendered body is deliberately left out.
func (s *service) log(event domain.NotificationEvent, msg domain.RenderedMessage, messageID, status, errMsg string) {
	if s.mailLog == nil {
		return
	}
	entry := &domain.MailLogEntry{
		LogID:     id.New(),
		TenantTag: event.TenantTag,
		EventKind: string(event.Kind),
		To:        msg.To,
		Subject:   msg.Subject,
		MessageID: messageID,
		Status:    status,
		ErrorMsg:  errMsg,
		CreatedAt: time.Now().UTC(),
	}
	// Detached context: the request may already be failing or done, and the
	// log row should still be attempted.
	logCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.mailLog.Put(logCtx, entry); err != nil {
		slog.Warn("failed to write mail log entry", "tenant_tag", event.TenantTag, "err", err)
	}
}
