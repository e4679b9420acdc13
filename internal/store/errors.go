package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist and
	// no fallback applies, e.g. looking up a daily record by an explicit
	// date key.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrStoreClosed is returned when an operation is attempted after the
	// underlying database has been closed.
	ErrStoreClosed = errors.New("store is closed")
)

// StoreError wraps a failed store operation with its entity and operation
// for logging and errors.Is/As checks on the underlying cause.
type StoreError struct {
	Entity    string // the entity type (e.g. "user", "chat")
	Operation string // the operation that failed (e.g. "get", "save")
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError for the given entity and operation.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
