package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrValidation marks a malformed inbound event from the identity
	// backend — a contract violation upstream, not a routing decision.
	ErrValidation = errors.New("validation failed")

	// ErrDelivery marks a mail transport failure. The wrapped message keeps
	// the provider's error text for operator diagnosis; callers must never
	// add credentials to it.
	ErrDelivery = errors.New("delivery failed")
)
