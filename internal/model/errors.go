package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
)

// ValidationError reports a request value that is malformed or violates a
// domain invariant. The API layer maps it to a 400 response.
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
