// Package common defines shared constants and sentinel errors used across
// the paperdock client and host. Callers match these with errors.Is.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors. The controller surfaces these the same way as any other
	// failure; the distinction exists for logs and tests only.
	ErrUnauthorized = errors.New("unauthorized")

	// Precondition errors raised before any network call is made.
	ErrNoDocument = errors.New("no document selected")
	ErrNoSession  = errors.New("not logged in")
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrEmptyField = errors.New("required field is empty")
)
