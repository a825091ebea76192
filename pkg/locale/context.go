package locale

import "context"

type langContextKey struct{}

// WithLanguage stores the resolved language in the context.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// FromContext returns the language stored in the context, or the default
// language when none was set.
func FromContext(ctx context.Context) Language {
	lang, _ := ctx.Value(langContextKey{}).(Language)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
