package mailer

import (
	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// HookPayload mirrors the identity backend's send-email hook body. Everything
// beyond these fields is ignored; user_metadata is an open bag owned by the
// sibling applications sharing the backend.
type HookPayload struct {
	User struct {
		ID           string                 `json:"id"`
		Email        string                 `json:"email"`
		UserMetadata map[string]interface{} `json:"user_metadata"`
	} `json:"user"`
	MailData *struct {
		Subject         string `json:"subject"`
		TemplateName    string `json:"template_name"`
		OTP             string `json:"otp"`
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"mail_data"`
}

// ParseEvent converts the loosely-typed hook payload into a NotificationEvent.
// It never rejects: an absent app_id yields an empty tenant tag, which the
// admission gate then refuses. Field-level validation (required email) happens
// on the accepted path only, so foreign-tenant events without an email are
// still reported as tenant mismatches rather than contract violations.
func ParseEvent(p HookPayload) domain.NotificationEvent {
	event := domain.NotificationEvent{
		UserID:    p.User.ID,
		UserEmail: p.User.Email,
		Kind:      domain.EventOther,
	}

	if tag, ok := p.User.UserMetadata["app_id"].(string); ok {
		event.TenantTag = tag
	}

	if p.MailData != nil {
		event.ConfirmationURL = p.MailData.ConfirmationURL
		event.OTPCode = p.MailData.OTP
		event.RawSubjectHint = p.MailData.Subject
		event.Kind = kindFromTemplateName(p.MailData.TemplateName)
	}

	return event
}

// kindFromTemplateName maps the backend's internal template names to event
// kinds. Unknown names stay "other" — the kind is informational only and
// never drives template selection (see Render).
func kindFromTemplateName(name string) domain.EventKind {
	switch name {
	case "confirmation", "signup", "signup_confirmation":
		return domain.EventSignupConfirmation
	case "recovery", "password_recovery":
		return domain.EventPasswordRecovery
	}
	return domain.EventOther
}
