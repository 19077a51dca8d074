// Package apperror defines the error types shared by the ledger, storage and CLI layers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when no user matches a username or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("username already exists")
	// ErrNoTransactions is returned by operations that need at least one transaction.
	ErrNoTransactions = errors.New("no transactions yet")
	// ErrNoSession is returned when an operation needs a logged-in user.
	ErrNoSession = errors.New("please log in first")
)

// ValidationError represents caller input that was rejected at the boundary
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// NewValidationError builds a ValidationError from an underlying parse error.
func NewValidationError(field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: err.Error()}
}

// StorageError wraps a failure of the underlying repository
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
