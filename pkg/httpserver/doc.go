// Package httpserver exposes field validation over HTTP.
//
// NewHandler builds a chi router that validates form submitted values:
//
//	curl -d value=john@example.com -d multiple=true localhost:8080/validate/email
//
// The response is a field.Result encoded as JSON. Valid values answer with
// 200, validation failures with 422, malformed parameters with 400 and
// unknown kinds with 404. Every response carries an X-Request-ID header, and
// RequestIDExtractor puts the same id on log records.
//
// Server runs any handler with graceful shutdown on context cancellation or
// SIGINT/SIGTERM:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, httpserver.NewHandler(reg, log)); err != nil {
//		return err
//	}
package httpserver
