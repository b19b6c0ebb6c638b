// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Session-related errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Organization-related errors
	ErrOrganizationNotFound     = errors.New("organization not found")
	ErrOrganizationTypeMismatch = errors.New("organization type mismatch")
	ErrInvalidOrgType           = errors.New("invalid organization type")

	// Approval-related errors
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrMissingReason     = errors.New("reason is required when suspending")

	// ErrPartialWrite means the status write and the audit write disagree.
	// Never retried automatically; operators reconcile by hand.
	ErrPartialWrite = errors.New("partial write: status and audit trail are inconsistent")
)
