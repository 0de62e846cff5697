package domain

import "errors"

// Sentinel errors shared across services, repositories and the API layer.
// Callers dispatch with errors.Is; the HTTP error handler owns the mapping
// to status codes.
var (
	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is the single outcome for every token failure:
	// malformed, wrong signature, unsupported algorithm, expired, or an
	// empty subject.
	ErrInvalidToken = errors.New("invalid token")

	ErrCategoryNotFound = errors.New("category not found")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
