package service

import (
	"errors"
	"fmt"
)

// Common error types for the service layer
var (
	// ErrNotSignedIn indicates no local user profile exists.
	ErrNotSignedIn = errors.New("no signed-in user")

	// ErrNoCompanion indicates the user has not completed the matching quiz.
	ErrNoCompanion = errors.New("no companion chosen yet")

	// ErrAlreadyCheckedIn indicates a daily check-in already exists for today.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrChallengeNotFound indicates the challenge id is not in the catalog.
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrEmptyResponses indicates a quiz or reflection submission carried no answers.
	ErrEmptyResponses = errors.New("responses cannot be empty")
)

// ServiceError wraps errors from the service layer with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "sign_in", "submit_daily")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
