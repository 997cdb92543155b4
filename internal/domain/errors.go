package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a payload fails validation.
	// This is usually wrapped in a *ValidationError carrying the messages.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError collects every field-level violation found in a payload.
// Messages are ordered the same way the field table is ordered.
type ValidationError struct {
	Kind     string
	Messages []string
}

// NewValidationError creates a ValidationError for the given entity kind.
func NewValidationError(kind string, messages []string) *ValidationError {
	return &ValidationError{Kind: kind, Messages: messages}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Kind, strings.Join(e.Messages, "; "))
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
