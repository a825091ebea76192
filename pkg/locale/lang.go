package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Language is a lowercase ISO 639-1 language code. The set of known codes is
// open: Parse accepts anything well-formed, and callers decide which codes
// they actually serve via Supported or their own list.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
	German     Language = "de"
	Japanese   Language = "ja"
)

// DefaultLanguage is the fallback for unrecognized or absent locale signals.
// English is the single documented default across all surfaces.
const DefaultLanguage = English

// maxTagLength caps inbound language tags. RFC 5646 recommends 35 characters;
// anything longer is garbage or abuse.
const maxTagLength = 35

func (l Language) String() string { return string(l) }

// Supported returns the languages the bundled message catalogs cover.
func Supported() []Language {
	return []Language{English, Indonesian, German, Japanese}
}

// IsSupported reports whether l is one of the bundled languages.
func IsSupported(l Language) bool {
	return slices.Contains(Supported(), l)
}

// Parse maps a single language tag to a supported Language. It takes the
// primary subtag before any -REGION suffix, lowercases it, and matches it
// against the supported codes. Unmatched or empty input yields the default.
func Parse(tag string) Language {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(tag) > maxTagLength {
		return DefaultLanguage
	}
	if idx := strings.IndexAny(tag, "-_"); idx > 0 {
		tag = tag[:idx]
	}
	l := Language(strings.ToLower(tag))
	if IsSupported(l) {
		return l
	}
	return DefaultLanguage
}

// ResolveAcceptLanguage derives the effective language from an
// Accept-Language style header: the first comma-separated preference wins,
// reduced to its primary subtag. Absent or unrecognized input resolves to
// the default language.
func ResolveAcceptLanguage(header string) Language {
	first, _, _ := strings.Cut(header, ",")
	// Strip any ;q= weight on the first entry.
	first, _, _ = strings.Cut(first, ";")
	return Parse(first)
}

type langWithQ struct {
	lang string
	q    float64
}

// maxHeaderLength truncates oversized Accept-Language headers before parsing
// to keep a hostile client from forcing large allocations.
const maxHeaderLength = 4096

func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var languages []langWithQ
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0
		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}
		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// Negotiate implements RFC 7231 Accept-Language negotiation against a set of
// supported languages, honoring quality values. Exact matches (en-US) are
// tried first across all preferences, then base-language matches
// (en-US -> en), so a lower-quality exact match never beats a higher-quality
// base match of the same phase. The result is always a member of supported:
// when nothing matches, the default language is returned if supported,
// otherwise the first supported language. No supported languages at all
// resolves to the default.
func Negotiate(header string, supported []Language) Language {
	if len(supported) == 0 {
		return DefaultLanguage
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(supported, Language(lq.lang)) {
			return Language(lq.lang)
		}
	}
	for _, lq := range languages {
		if idx := strings.Index(lq.lang, "-"); idx > 0 {
			base := Language(lq.lang[:idx])
			if slices.Contains(supported, base) {
				return base
			}
		}
	}

	if slices.Contains(supported, DefaultLanguage) {
		return DefaultLanguage
	}
	return supported[0]
}
