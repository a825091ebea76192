// Package locale resolves the effective language for a request.
//
// A Language is selected once per request, from an explicit cookie or query
// parameter, or negotiated from the Accept-Language header, and is then
// carried in the request context. Unrecognized or absent signals always
// resolve to English, the single documented default.
//
//	r.Use(locale.Middleware(nil))
//	...
//	lang := locale.FromContext(r.Context())
package locale
