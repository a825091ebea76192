package validator

import (
	"strings"
	"unicode"
)

// FormatMessage merges a comma-joined list of violation phrases for one
// field into a single readable sentence. The first phrase establishes the
// subject; subsequent phrases that repeat its leading word have that word
// stripped and continue in lower case, so "Name is too short, Name contains
// invalid characters" becomes "Name is too short, contains invalid
// characters". A single-phrase input is returned unchanged.
func FormatMessage(msg string) string {
	parts := strings.Split(msg, ",")
	if len(parts) == 0 {
		return ""
	}

	first := strings.TrimSpace(parts[0])

	// The leading token is only treated as a shared prefix when it is a real
	// word; one-letter tokens would mangle unrelated phrases.
	firstPrefix := ""
	if fields := strings.Fields(first); len(fields) > 0 && len(fields[0]) >= 2 {
		firstPrefix = fields[0]
	}

	rest := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		phrase := strings.TrimSpace(part)
		if strings.HasPrefix(phrase, firstPrefix) {
			phrase = strings.TrimLeft(phrase[len(firstPrefix):], " \t")
		}
		rest = append(rest, lowerFirst(phrase))
	}

	if len(rest) == 0 {
		return first
	}
	return first + ", " + strings.Join(rest, ", ")
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
