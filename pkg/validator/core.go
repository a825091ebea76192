package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/punchkit/punchkit/pkg/catalog"
)

// ValidationError is one field's aggregated validation failure: the field
// name, the rule code that produced it, and the human-readable message
// assembled from the field's individual violations.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationErrors is the structured multi-field error collection returned
// by Validate. It serializes to the field→message JSON object consumed by
// form UIs.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the aggregated message for a field, or "" when the field has
// no error.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	sort.Strings(fields)
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map returns the field→message form of the collection, suitable for direct
// JSON serialization in a 400 response body.
func (ve ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		m[err.Field] = err.Message
	}
	return m
}

// ExtractValidationErrors extracts ValidationErrors from an error, or nil
// when the error is of a different kind.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// check is a single rule within a field's rule group. It returns the
// localized violation message, or "" when the value passes. Checks are pure:
// no check depends on another's outcome, and each consults the catalog only
// to fetch its failure text.
type check func(value string, messages catalog.MessageLookup) string

// runChecks applies a field's rule group in its fixed documented order and
// collects every violation message.
func runChecks(checks []check, value string, messages catalog.MessageLookup) []string {
	var violations []string
	for _, c := range checks {
		if msg := c(value, messages); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}
