// Package logger builds *slog.Logger values for formkit binaries.
//
// New takes functional options for level, format, output and static
// attributes. WithContextValue and WithContextExtractors register callbacks
// that copy request-scoped values, such as the request id set by the
// formcheck HTTP server, onto every record logged with that context.
//
// Attribute helpers (Field, Validator, Kind, ErrorCount, Duration, Error ...)
// keep key names consistent between packages:
//
//	log := logger.New(logger.WithEnvironment("development", "formcheck"))
//	log.DebugContext(ctx, "field validated",
//	    logger.Field("email"),
//	    logger.ErrorCount(1),
//	)
//
// Library packages never create loggers themselves. They accept one through
// their own WithLogger option and default to Discard.
package logger
