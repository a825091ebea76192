// Package logger is a small factory around log/slog.
//
// It produces JSON (production) or text (development) loggers, attaches
// static service attributes, and can inject request-scoped attributes from
// the context of each log call:
//
//	log := logger.New(
//		logger.WithProduction("punchkit"),
//		logger.WithContextExtractors(webapi.RequestIDExtractor()),
//	)
package logger
