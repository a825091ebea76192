package validator

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/punchkit/punchkit/pkg/catalog"
)

const (
	minEmailLength         = 5
	maxEmailLength         = 254
	minDomainSegmentLength = 2
	minTLDLength           = 2
)

// emailDomain returns the portion between the first and second '@' (or the
// end of the string). For "a@@b.co" that is the empty string, which the
// structural domain checks then reject.
func emailDomain(email string) (string, bool) {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

func emailMinLength(email string, messages catalog.MessageLookup) string {
	if len(email) < minEmailLength {
		return messages.GetMessage(catalog.NamespaceValidation, "email.too_short")
	}
	return ""
}

func emailMaxLength(email string, messages catalog.MessageLookup) string {
	if len(email) > maxEmailLength {
		return messages.GetMessage(catalog.NamespaceValidation, "email.too_long")
	}
	return ""
}

func emailHasAtAndDot(email string, messages catalog.MessageLookup) string {
	if !strings.Contains(email, "@") {
		return messages.GetMessage(catalog.NamespaceValidation, "email.missing_at")
	}
	if !strings.Contains(email, ".") {
		return messages.GetMessage(catalog.NamespaceValidation, "email.missing_dot")
	}
	return ""
}

// emailAtBeforeDot rejects addresses whose last '@' sits at or after the
// final '.', i.e. an '@' appearing after the domain's last dot.
func emailAtBeforeDot(email string, messages catalog.MessageLookup) string {
	atIdx := strings.LastIndex(email, "@")
	dotIdx := strings.LastIndex(email, ".")
	if atIdx >= 0 && dotIdx >= 0 && atIdx >= dotIdx {
		return messages.GetMessage(catalog.NamespaceValidation, "email.at_before_dot")
	}
	return ""
}

func emailNoInvalidChars(email string, messages catalog.MessageLookup) string {
	for _, c := range email {
		if unicode.IsSpace(c) || c > unicode.MaxASCII {
			return messages.GetMessage(catalog.NamespaceValidation, "email.invalid_chars")
		}
	}
	return ""
}

func emailNoConsecutiveDots(email string, messages catalog.MessageLookup) string {
	if strings.Contains(email, "..") {
		return messages.GetMessage(catalog.NamespaceValidation, "email.consecutive_dots")
	}
	return ""
}

func emailNoLeadingOrTrailingDot(email string, messages catalog.MessageLookup) string {
	if strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") {
		return messages.GetMessage(catalog.NamespaceValidation, "email.starts_or_ends_with_dot")
	}
	return ""
}

func emailDomainStartsWithoutDot(email string, messages catalog.MessageLookup) string {
	if domain, ok := emailDomain(email); ok && strings.HasPrefix(domain, ".") {
		return messages.GetMessage(catalog.NamespaceValidation, "email.domain_starts_with_dot")
	}
	return ""
}

func emailDomainExists(email string, messages catalog.MessageLookup) string {
	if _, ok := emailDomain(email); !ok {
		return messages.GetMessage(catalog.NamespaceValidation, "email.missing_domain")
	}
	return ""
}

func emailDomainStructure(email string, messages catalog.MessageLookup) string {
	if domain, ok := emailDomain(email); ok {
		if domain == "" || !strings.Contains(domain, ".") || strings.Contains(domain, " ") {
			return messages.GetMessage(catalog.NamespaceValidation, "email.invalid_domain")
		}
	}
	return ""
}

// emailDomainSegmentLength requires the first domain label of a subdomained
// address to have at least two characters. Plain host.tld domains are
// exempt, so single-letter hosts like "b.co" stay valid.
func emailDomainSegmentLength(email string, messages catalog.MessageLookup) string {
	if domain, ok := emailDomain(email); ok {
		if strings.Count(domain, ".") < 2 {
			return ""
		}
		if firstDot := strings.Index(domain, "."); firstDot >= 0 && firstDot < minDomainSegmentLength {
			return messages.GetMessage(catalog.NamespaceValidation, "email.invalid_domain_length")
		}
	}
	return ""
}

func emailTLDFormat(email string, messages catalog.MessageLookup) string {
	domain, ok := emailDomain(email)
	if !ok {
		return ""
	}
	lastDot := strings.LastIndex(domain, ".")
	if lastDot < 0 {
		return ""
	}

	tld := domain[lastDot+1:]
	allAlphabetic := true
	for _, c := range tld {
		if !unicode.IsLetter(c) {
			allAlphabetic = false
			break
		}
	}
	if len(tld) < minTLDLength || !allAlphabetic {
		return messages.GetMessage(catalog.NamespaceValidation, "email.invalid_tld")
	}
	return ""
}

// emailChecks is the email rule group: structural checks in their fixed
// documented order. The holistic RFC-shape parse is not part of the group;
// it runs as a final catch-all only when every structural check passed, so
// obviously broken input produces targeted errors rather than a duplicate
// generic one.
var emailChecks = []check{
	emailMinLength,
	emailMaxLength,
	emailHasAtAndDot,
	emailAtBeforeDot,
	emailNoInvalidChars,
	emailNoConsecutiveDots,
	emailNoLeadingOrTrailingDot,
	emailDomainStartsWithoutDot,
	emailDomainExists,
	emailDomainStructure,
	emailDomainSegmentLength,
	emailTLDFormat,
}

func emailOverallFormat(email string, messages catalog.MessageLookup) string {
	if _, err := mail.ParseAddress(email); err != nil {
		return messages.GetMessage(catalog.NamespaceValidation, "email.invalid")
	}
	return ""
}

// ValidateEmail applies the email rule group and returns the aggregated
// validation error, or nil when the address passes every check.
func ValidateEmail(messages catalog.MessageLookup, email string) *ValidationError {
	violations := runChecks(emailChecks, email, messages)

	if len(violations) == 0 {
		if msg := emailOverallFormat(email, messages); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{
		Field:   "email",
		Rule:    "email.invalid",
		Message: FormatMessage(strings.Join(violations, ", ")),
	}
}
