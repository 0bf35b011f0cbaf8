package models

import "errors"

// Domain errors surfaced to API callers. Transport failures of the geocoding
// and store providers are absorbed into fallback values and never appear here.
var (
	// ErrUserNotFound indicates the referenced user id does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreNotFound indicates the referenced store id does not exist
	ErrStoreNotFound = errors.New("store not found")

	// ErrEmailTaken indicates a registration conflict on the email column
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed email/password check
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoLocationSet indicates an operation that requires stored coordinates
	// was called for a user without any
	ErrNoLocationSet = errors.New("user location is not set")
)
