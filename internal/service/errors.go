package service

import "errors"

// Service-level failure taxonomy. Handlers map these onto HTTP statuses;
// none of them are retryable, every failure is surfaced to the caller.
var (
	// ErrUnauthenticated means no verified caller identity was present.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized means the caller lacks permission for the mutation,
	// e.g. recording a settlement they are not a party to.
	ErrUnauthorized = errors.New("not allowed")

	// ErrNotFound means a referenced group, contact, or expense does not
	// exist (or is not visible to the caller).
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount means a non-positive monetary amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidInput covers empty required fields and malformed share lists.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means a uniqueness rule was violated, e.g. a duplicate
	// group name for an owner or a second contact linked to the same user.
	// It is returned as a value (not panicked) so UIs can render inline.
	ErrConflict = errors.New("already exists")
)
