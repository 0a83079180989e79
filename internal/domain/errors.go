package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidOperation is returned for requests that can never succeed,
	// such as targeting oneself with a connection request or a follow.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrPersistence wraps a failure of the underlying store. The cause is
	// kept in the chain so callers can still inspect it.
	ErrPersistence = errors.New("persistence error")

	// ErrDelivery marks a whole-batch failure reported by the push provider.
	ErrDelivery = errors.New("delivery error")

	// ErrNoDeliveryTokens is returned when a receiver has no registered tokens.
	ErrNoDeliveryTokens = errors.New("no delivery tokens")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ErrConfirmationRequired is returned by destructive relationship actions
// (cancel, disconnect) when the caller did not confirm them.
var ErrConfirmationRequired = NewValidationError("confirmed", "destructive action must be confirmed")

// PersistenceError wraps err with ErrPersistence unless it already carries a
// domain classification that callers rely on.
func PersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidOperation),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrPersistence):
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
