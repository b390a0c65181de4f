// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed "X-Request-ID" header sent by the client or
// generates a UUIDv4, stores it in the request context and echoes it in the
// response. Extractor plugs the id into loggers built by pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor()))
//	r.Use(requestid.Middleware)
//
// Malformed client ids are replaced silently; the package never returns errors.
package requestid
