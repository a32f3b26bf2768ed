package internal

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// InputValidator provides input validation for values crossing the public
// API boundary
type InputValidator struct {
	maxNameLength int
}

// NewInputValidator creates a new input validator with default settings
func NewInputValidator() *InputValidator {
	return &InputValidator{
		maxNameLength: 100, // cuisine and country names are short labels
	}
}

// ValidateCuisineName validates a cuisine name used as a cache partition key
func (v *InputValidator) ValidateCuisineName(name string) error {
	if name == "" {
		return NewValidationError("cuisine name cannot be empty", nil)
	}

	if len(name) > v.maxNameLength {
		return NewValidationError(fmt.Sprintf("cuisine name exceeds maximum length of %d characters", v.maxNameLength), nil)
	}

	if !utf8.ValidString(name) {
		return NewValidationError("cuisine name contains invalid UTF-8 characters", nil)
	}

	for i, r := range name {
		if unicode.IsControl(r) {
			return NewValidationError(fmt.Sprintf("cuisine name contains control character at position %d", i), nil)
		}
	}

	return nil
}
