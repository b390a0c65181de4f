package binder

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownForm          = errors.New("unknown form")
	ErrUnknownField         = errors.New("unknown field")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidBody          = errors.New("invalid request body")
)

// FieldError ties a configuration error to the field that declared it.
type FieldError struct {
	Form  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("form %q, field %q: %v", e.Form, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors flattens a joined bind error into its per-field errors.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*FieldError
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	if errors.As(err, &fe) {
		return []*FieldError{fe}
	}
	return nil
}
