package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidDateKey is returned when a calendar date key is not in
	// YYYY-MM-DD form.
	ErrInvalidDateKey = errors.New("invalid date key")

	// ErrInvalidClockTime is returned when a clock time is not in HH:MM form.
	ErrInvalidClockTime = errors.New("invalid clock time")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrUnknownCompanion is returned when a companion variant is not one
	// of the five fixed personas.
	ErrUnknownCompanion = errors.New("unknown companion variant")
)

// ValidationError wraps a sentinel domain error with the field that failed.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
