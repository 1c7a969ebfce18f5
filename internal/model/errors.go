package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Admin credential errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("no active session")

	// Candidate verification errors
	ErrCandidateNotFound = errors.New("candidate not found")
)

// ValidationError reports a client-side input check failure. It never
// reaches the backend.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
