package service

import "errors"

// Sentinel errors returned by services. Handlers map these to HTTP
// statuses; everything else is treated as an internal error.
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a uniqueness constraint was violated
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSlug indicates a title or name yields an empty slug
	ErrInvalidSlug = errors.New("value yields an empty slug")
)
