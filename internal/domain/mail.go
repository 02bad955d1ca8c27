package domain

import "time"

// EventKind classifies an auth-lifecycle event as reported by the identity
// backend. The backend's classification is unreliable (see mailer.Service);
// it is parsed and logged but never drives template selection on its own.
type EventKind string

const (
	EventSignupConfirmation EventKind = "signup_confirmation"
	EventPasswordRecovery   EventKind = "password_recovery"
	EventOther              EventKind = "other"
)

// NotificationEvent is one inbound auth-lifecycle occurrence, already parsed
// and validated from the hook payload. Request-scoped; never persisted.
type NotificationEvent struct {
	UserID          string
	UserEmail       string
	TenantTag       string // app_id from user metadata; opaque, compared exactly
	Kind            EventKind
	ConfirmationURL string
	OTPCode         string
	RawSubjectHint  string
}

// RejectReason explains a dispatch decision.
type RejectReason string

const (
	ReasonAccepted       RejectReason = "accepted"
	ReasonTenantMismatch RejectReason = "tenant_mismatch"
)

// RenderedMessage is the outbound email, built only for accepted events.
type RenderedMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

// DispatchStatus is the terminal outcome of handling one event.
type DispatchStatus string

const (
	DispatchRejected   DispatchStatus = "rejected"
	DispatchDispatched DispatchStatus = "dispatched"
)

// DispatchOutcome is returned by the mailer service for every non-failing
// call. Rejection is a normal return value, not an error: roughly half of all
// inbound events belong to sibling tenants sharing the identity backend.
type DispatchOutcome struct {
	Status    DispatchStatus
	Reason    RejectReason
	MessageID string // set when Status == DispatchDispatched
}

// MailLogEntry records one dispatch attempt for operator diagnosis.
// The rendered body is deliberately not stored.
type MailLogEntry struct {
	LogID     string    `json:"id" dynamodbav:"log_id"`
	TenantTag string    `json:"tenant_tag" dynamodbav:"tenant_tag"`
	EventKind string    `json:"event_kind" dynamodbav:"event_kind"`
	To        string    `json:"to" dynamodbav:"to"`
	Subject   string    `json:"subject" dynamodbav:"subject"`
	MessageID string    `json:"message_id" dynamodbav:"message_id"`
	Status    string    `json:"status" dynamodbav:"status"` // "sent" | "failed"
	ErrorMsg  string    `json:"error,omitempty" dynamodbav:"error_msg"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}
