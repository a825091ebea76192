package validator

import (
	"strings"
	"unicode"

	"github.com/punchkit/punchkit/pkg/catalog"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

func nameNotEmpty(name string, messages catalog.MessageLookup) string {
	if strings.TrimSpace(name) == "" {
		return messages.GetMessage(catalog.NamespaceValidation, "name.empty")
	}
	return ""
}

func nameMinLength(name string, messages catalog.MessageLookup) string {
	if len(name) < minNameLength {
		return messages.GetMessage(catalog.NamespaceValidation, "name.too_short")
	}
	return ""
}

func nameMaxLength(name string, messages catalog.MessageLookup) string {
	if len(name) > maxNameLength {
		return messages.GetMessage(catalog.NamespaceValidation, "name.too_long")
	}
	return ""
}

func nameValidChars(name string, messages catalog.MessageLookup) string {
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsSpace(c) {
			return messages.GetMessage(catalog.NamespaceValidation, "name.invalid_chars")
		}
	}
	return ""
}

// nameChecks is the name rule group, in its fixed documented order.
var nameChecks = []check{
	nameNotEmpty,
	nameMinLength,
	nameMaxLength,
	nameValidChars,
}

// ValidateName applies the name rule group and returns the aggregated
// validation error, or nil when the name passes every check.
func ValidateName(messages catalog.MessageLookup, name string) *ValidationError {
	violations := runChecks(nameChecks, name, messages)
	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{
		Field:   "name",
		Rule:    "name.invalid",
		Message: FormatMessage(strings.Join(violations, ", ")),
	}
}
