package locale

import "net/http"

// Middleware resolves the request language and stores it in the request
// context so downstream handlers can retrieve it with FromContext.
//
// If extr is nil, DefaultExtractor is used. An empty extraction result falls
// back to the default language.
func Middleware(extr Extractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
		})
	}
}
