package locale

import (
	"net/http"
	"strings"
)

// Extractor derives a language from an HTTP request. It returns the empty
// Language when the request carries no usable signal, letting the caller
// apply its own fallback.
type Extractor func(r *http.Request) Language

// ExtractorConfig holds the sources DefaultExtractor consults.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	Supported      []Language
}

// ExtractorOption configures DefaultExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie consulted for an explicit language choice.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter consulted for a language.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupported restricts extraction to the given languages.
func WithSupported(langs ...Language) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.Supported = langs
		}
	}
}

// DefaultExtractor checks, in priority order: a language cookie, a query
// parameter, and the Accept-Language header. Explicit choices (cookie, query)
// must match a supported language exactly or by primary subtag; the header is
// negotiated with quality values.
func DefaultExtractor(opts ...ExtractorOption) Extractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		Supported:      Supported(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	validate := func(raw string) Language {
		raw = strings.TrimSpace(raw)
		if raw == "" || len(raw) > maxTagLength {
			return ""
		}
		l := Parse(raw)
		for _, s := range cfg.Supported {
			if s == l {
				return l
			}
		}
		return ""
	}

	return func(r *http.Request) Language {
		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if l := validate(cookie.Value); l != "" {
					return l
				}
			}
		}

		if cfg.QueryParamName != "" {
			if l := validate(r.URL.Query().Get(cfg.QueryParamName)); l != "" {
				return l
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			return Negotiate(header, cfg.Supported)
		}

		return ""
	}
}
