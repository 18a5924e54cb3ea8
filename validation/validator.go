package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/transcriptkit/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an EngineError if there are validation errors, nil otherwise.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	engErr := errors.Validation(strings.Join(messages, "; "))
	engErr.Details = map[string]any{
		"fields": v.errors,
	}
	return engErr
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}
	if parsed == uuid.Nil {
		v.AddError(field, "must not be empty")
	}
	return v
}

// Index checks that an index is within [0, length).
func (v *Validator) Index(field string, index, length int) *Validator {
	if index < 0 || index >= length {
		v.AddError(field, fmt.Sprintf("must be in [0, %d)", length))
	}
	return v
}

// InteriorIndex checks that an index is within (0, length), i.e. a valid
// split point that leaves at least one element on each side.
func (v *Validator) InteriorIndex(field string, index, length int) *Validator {
	if index <= 0 || index >= length {
		v.AddError(field, fmt.Sprintf("must be in (0, %d)", length))
	}
	return v
}

// NonNegative checks that a time value is >= 0.
func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.AddError(field, "must not be negative")
	}
	return v
}

// TimeRange checks that end is not before start.
func (v *Validator) TimeRange(field string, start, end float64) *Validator {
	if end < start {
		v.AddError(field, "end must not be before start")
	}
	return v
}
