package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Lang records the resolved request language under the key "lang".
func Lang(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("lang", lang)
}

// Namespace records a message catalog namespace under the key "namespace".
func Namespace(ns string) slog.Attr {
	if ns == "" {
		return slog.Attr{}
	}
	return slog.String("namespace", ns)
}

// Field records a validated field name under the key "field".
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}
