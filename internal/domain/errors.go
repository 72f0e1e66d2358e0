package domain

import (
	"errors"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrMissingID   = errors.New("id is missing")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError reports the first rule a candidate record violated.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to read the offending field and its rule-specific message.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error returns the rule-specific message without any prefix so that it can
// be handed to API clients verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
