// Package api exposes bound forms over HTTP.
//
//	GET  /healthz                               liveness
//	GET  /readyz                                ready once a form is bound
//	GET  /forms                                 bound forms and their rules
//	GET  /forms/{form}                          one form, JSON or HTML
//	POST /forms/{form}/validate                 validate a submission
//	POST /forms/{form}/fields/{field}/validate  validate one field
//
// Values are read from url-encoded, multipart or JSON bodies. Datastar
// requests are answered with SSE: a formguard signal per field, the
// firstInvalid signal on submit, and the field error elements re-rendered.
package api
