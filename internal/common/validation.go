package common

import (
	"fmt"
	"strings"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// Validator collects field-level validation errors.
type Validator struct {
	errors []ValidationError
}

func NewValidator() *Validator {
	return &Validator{}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName, value string, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Error returns a combined error, or nil when everything passed.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	var messages []string
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return NewAppError("VALIDATION_ERROR", strings.Join(messages, "; "), ErrInvalidInput)
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName, value string) *ValidationError

// NotBlank rejects empty or whitespace-only values.
func NotBlank(fieldName, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: fieldName, Message: "is required"}
	}
	return nil
}

// MaxLen caps a value's length in bytes.
func MaxLen(n int) ValidationRule {
	return func(fieldName, value string) *ValidationError {
		if len(value) > n {
			return &ValidationError{Field: fieldName, Message: fmt.Sprintf("must be at most %d characters", n)}
		}
		return nil
	}
}

// LooksLikeEmail is a permissive shape check, not RFC validation.
func LooksLikeEmail(fieldName, value string) *ValidationError {
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
		return &ValidationError{Field: fieldName, Message: "must be a valid email address"}
	}
	return nil
}
