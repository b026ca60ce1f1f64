package validation

import (
	"strings"
	"unicode/utf8"

	"todo-list/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.ValidationConfig
}

// NewValidator creates a validator using the default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a validator with configured limits
func NewValidatorWithConfig(cfg *config.ValidationConfig) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks the rune length of the trimmed string.
// A max of zero means unbounded.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	if length < min {
		return false
	}
	return max <= 0 || length <= max
}

// IsValidID checks if an id is a positive integer
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TextMaxLength returns the configured maximum text length or the default
func (v *Validator) TextMaxLength() int {
	if v.config != nil {
		return v.config.TextMaxLength
	}
	return 500
}

// CategoryMaxLength returns the configured maximum category length or the default
func (v *Validator) CategoryMaxLength() int {
	if v.config != nil {
		return v.config.CategoryMaxLength
	}
	return 100
}

// StrictReorder reports whether reorder requests must list every stored id
func (v *Validator) StrictReorder() bool {
	return v.config != nil && v.config.StrictReorder
}
