package api

import "errors"

var (
	// ErrSessionExpired reports that the backend rejected the access token.
	// The session-expired handler has already been notified when a caller
	// sees this error.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnavailable reports that no response was received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound reports a 404 for a named resource.
	ErrNotFound = errors.New("not found")
)
