package validator

import "github.com/punchkit/punchkit/pkg/catalog"

// ValidatePasswordConfirmation checks that a confirmation value was supplied
// and matches the password byte for byte. Unlike the other rule groups it
// needs both values; the confirmation is passed as a pointer so "absent" and
// "empty" stay distinct.
func ValidatePasswordConfirmation(messages catalog.MessageLookup, password string, confirmation *string) *ValidationError {
	if confirmation == nil {
		return &ValidationError{
			Field:   "password_confirmation",
			Rule:    "password_confirmation.required",
			Message: messages.GetMessage(catalog.NamespaceValidation, "password_confirmation.required"),
		}
	}

	if password != *confirmation {
		return &ValidationError{
			Field:   "password_confirmation",
			Rule:    "password_confirmation.mismatch",
			Message: FormatMessage(messages.GetMessage(catalog.NamespaceValidation, "password_confirmation.mismatch")),
		}
	}

	return nil
}
