package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)

// WithCause keeps err reachable through errors.Is and errors.As while the
// response uses the status and key of e.
func (e HTTPError) WithCause(err error) error {
	return &causedError{HTTPError: e, cause: err}
}

type causedError struct {
	HTTPError
	cause error
}

func (e *causedError) Error() string {
	if e.cause == nil {
		return e.Key
	}
	return e.Key + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.HTTPError}
	}
	return []error{e.HTTPError, e.cause}
}
