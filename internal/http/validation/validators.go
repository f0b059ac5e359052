// Package validation provides form field validators for the UI handlers.
// Validation here is a usability layer; the backend enforces its own rules
// on every write.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an
// error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen
// characters. Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Email validates a minimal address shape: something@something.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		at := strings.Index(v, "@")
		if at <= 0 || at == len(v)-1 || strings.Contains(v, " ") {
			return "Enter a valid " + strings.ToLower(fieldName) + "."
		}
		return ""
	}
}

// ISODate validates a yyyy-mm-dd date. Empty values pass; pair with
// Required when the field is mandatory.
func ISODate(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return fieldName + " must be a valid date (yyyy-mm-dd)."
		}
		return ""
	}
}

// NonNegativeNumber validates a decimal number that is zero or greater.
func NonNegativeNumber(fieldName string) Validator {
	return func(v string) string {
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fieldName + " must be a number."
		}
		if n < 0 {
			return fieldName + " cannot be negative."
		}
		return ""
	}
}

// OneOf validates that a field matches one of the provided options
// (case-insensitive).
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.ToUpper(strings.TrimSpace(v))
		for _, opt := range options {
			if v == strings.ToUpper(opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// Optional validates that an optional field does not exceed maxLen
// characters if provided.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if err := v(value); err != "" {
			fv.errors[field] = err
			break
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
