package validation

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps JSON field names to the message shown for any violation
// of that field. The contact form shows one message per field.
var FieldMessages = map[string]string{
	"name":          "Please enter your name",
	"email":         "Please enter a valid email",
	"message":       "Please add a bit more detail",
	"topics":        "Select at least one topic",
	"contactMethod": "Choose Email or Call",
}

// FormatValidationErrors converts validator.ValidationErrors to field errors,
// keeping every violation in declaration order.
func FormatValidationErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	seen := make(map[string]bool, len(validationErrors))
	for _, e := range validationErrors {
		field := baseField(e.Field())
		// one entry per field: a slice and its elements are the same problem to the visitor
		if seen[field] {
			continue
		}
		seen[field] = true
		fields = append(fields, apperror.FieldError{
			Field:   field,
			Message: formatSingleError(field, e),
		})
	}
	return fields
}

// Summary joins field errors into the single string returned to clients.
func Summary(prefix string, fields []apperror.FieldError) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	if prefix == "" {
		return strings.Join(parts, "; ")
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(field string, e validator.FieldError) string {
	if msg, ok := FieldMessages[field]; ok {
		return msg
	}

	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must have at least %s items", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "email":
		return "must be a valid email address"
	case "slug":
		return "must be lowercase words separated by hyphens"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}

// baseField strips a dive index: "topics[0]" -> "topics"
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
