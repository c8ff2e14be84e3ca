package appcore

import (
	"fmt"
	"regexp"
)

// Field length limits shared between transport binding and use-case validation.
const (
	// MaxEmailLength is the maximum accepted email length.
	MaxEmailLength = 320

	// MaxPasswordLength is the maximum accepted password length.
	MaxPasswordLength = 2048

	// MaxUsernameLength is the maximum accepted username length.
	MaxUsernameLength = 64
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateRequired checks that a string is not empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string.
func ValidateMaxLength(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLength))
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(field, value string) error {
	if value == "" {
		return NewValidationError(field, "email is required")
	}
	if len(value) > MaxEmailLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", MaxEmailLength))
	}
	hasAt := false
	hasDot := false
	for i, ch := range value {
		if ch == '@' {
			hasAt = true
		}
		if hasAt && ch == '.' && i > 0 && i < len(value)-1 {
			hasDot = true
		}
	}
	if !hasAt || !hasDot {
		return NewValidationError(field, "must be a valid email address")
	}
	return nil
}

// ValidateUsername checks that a username is non-empty, within length limits
// and contains only letters, digits, underscores and hyphens.
func ValidateUsername(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}
	if len(value) > MaxUsernameLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", MaxUsernameLength))
	}
	if !usernamePattern.MatchString(value) {
		return NewValidationError(field, "may contain only letters, digits, '_' and '-'")
	}
	return nil
}

// ValidatePassword checks that a password is non-empty and within length limits.
func ValidatePassword(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}
	if len(value) > MaxPasswordLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", MaxPasswordLength))
	}
	return nil
}
