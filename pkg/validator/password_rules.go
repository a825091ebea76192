package validator

import (
	"strings"
	"unicode"

	"github.com/punchkit/punchkit/pkg/catalog"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

func passwordMinLength(password string, messages catalog.MessageLookup) string {
	if len(password) < minPasswordLength {
		return messages.GetMessage(catalog.NamespaceValidation, "password.too_short")
	}
	return ""
}

func passwordMaxLength(password string, messages catalog.MessageLookup) string {
	if len(password) > maxPasswordLength {
		return messages.GetMessage(catalog.NamespaceValidation, "password.too_long")
	}
	return ""
}

func passwordNoWhitespace(password string, messages catalog.MessageLookup) string {
	if strings.ContainsFunc(password, unicode.IsSpace) {
		return messages.GetMessage(catalog.NamespaceValidation, "password.contains_space")
	}
	return ""
}

func passwordHasUppercase(password string, messages catalog.MessageLookup) string {
	if !strings.ContainsFunc(password, func(c rune) bool { return c >= 'A' && c <= 'Z' }) {
		return messages.GetMessage(catalog.NamespaceValidation, "password.missing_uppercase")
	}
	return ""
}

func passwordHasLowercase(password string, messages catalog.MessageLookup) string {
	if !strings.ContainsFunc(password, func(c rune) bool { return c >= 'a' && c <= 'z' }) {
		return messages.GetMessage(catalog.NamespaceValidation, "password.missing_lowercase")
	}
	return ""
}

func passwordHasDigit(password string, messages catalog.MessageLookup) string {
	if !strings.ContainsFunc(password, func(c rune) bool { return c >= '0' && c <= '9' }) {
		return messages.GetMessage(catalog.NamespaceValidation, "password.missing_digit")
	}
	return ""
}

func passwordHasSpecialChar(password string, messages catalog.MessageLookup) string {
	hasSpecial := strings.ContainsFunc(password, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	if !hasSpecial {
		return messages.GetMessage(catalog.NamespaceValidation, "password.missing_special_char")
	}
	return ""
}

// passwordChecks is the password rule group, in its fixed documented order.
var passwordChecks = []check{
	passwordMinLength,
	passwordMaxLength,
	passwordNoWhitespace,
	passwordHasUppercase,
	passwordHasLowercase,
	passwordHasDigit,
	passwordHasSpecialChar,
}

// ValidatePassword applies the password rule group and returns the
// aggregated validation error, or nil when the password passes every check.
func ValidatePassword(messages catalog.MessageLookup, password string) *ValidationError {
	violations := runChecks(passwordChecks, password, messages)
	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{
		Field:   "password",
		Rule:    "password.invalid",
		Message: FormatMessage(strings.Join(violations, ", ")),
	}
}
