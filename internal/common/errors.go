// Package common defines shared constants and sentinel errors used across
// the Filebox client and the development server. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized indicates the backend rejected the credential (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness violation (e.g. duplicate email).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates a client-side pre-flight validation failure.
	ErrValidation = errors.New("validation error")

	// ErrInvalidToken indicates a malformed or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
)
