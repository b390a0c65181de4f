// Package logger builds the structured slog loggers used across formguard.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes, and ContextExtractor
// callbacks that pull request-scoped values such as the request id out of
// context.Context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formguard"),
//	    logger.WithContextExtractors(requestid.Extractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Form("contact"), logger.Valid(false))
//
// Attribute helpers in attr.go keep key names consistent: Form, Field, Rule,
// Verdict, Error and friends. Helpers that take optional values return an empty
// slog.Attr when there is nothing to log, which slog drops.
//
// Invalid format or level names panic at construction time: logger
// misconfiguration should stop startup rather than silently log at the wrong
// level.
package logger
