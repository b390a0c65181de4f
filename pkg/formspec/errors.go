package formspec

import "errors"

var (
	// ErrInvalidDocument is returned when a declaration document is malformed.
	ErrInvalidDocument = errors.New("invalid form document")

	// ErrInvalidTarget is returned when FromStruct is given something other than a struct.
	ErrInvalidTarget = errors.New("form target must be a struct or pointer to struct")
)
