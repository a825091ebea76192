// Package webapi exposes the validation core over HTTP: a locales endpoint
// serving message catalog namespaces to the front-end, and a validation
// endpoint answering with the structured field→message error object.
//
// The request language is resolved once per request by the locale middleware
// and drives which catalog the validation consults.
package webapi
