// Package common defines shared constants and sentinel errors used across
// the audit service and its CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation / state machine errors.
	ErrorValidation             = errors.New("validation error")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrNoActiveTemplate         = errors.New("no active checklist template")
	ErrProductTypeLocked        = errors.New("product type is locked once items exist")
	ErrAuditAlreadyTerminal     = errors.New("audit record already terminal")
	ErrAuditNotRunning          = errors.New("audit is not running")
	ErrDossierLockNotObtained   = errors.New("could not obtain dossier lock")
	ErrStorageUnavailable       = errors.New("storage unavailable")
	ErrNotificationNotDelivered = errors.New("notification not delivered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
