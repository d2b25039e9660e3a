package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the upstream rejects a login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when a persisted token has passed its
	// expiry; the shopper must re-authenticate
	ErrSessionExpired = errors.New("session expired")

	// ErrNoSession is returned when no session exists for the given key
	ErrNoSession = errors.New("no active session")

	// ErrAuthUnavailable is returned when the upstream auth API cannot be
	// reached
	ErrAuthUnavailable = errors.New("auth service unavailable")

	// ErrUserNotFound is returned when the upstream has no such user
	ErrUserNotFound = errors.New("user not found")
)
