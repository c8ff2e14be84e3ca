package appcore

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrEmptyField       = errors.New("required field is empty")
	ErrInvalidFormat    = errors.New("invalid format")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
