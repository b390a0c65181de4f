package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formguard/pkg/fieldstate"
)

// ErrorClass is set on every field error element.
const ErrorClass = "formguard-error"

// FieldErrorID is the element id of a field's error message.
func FieldErrorID(form, field string) string {
	return form + "-" + field + "-error"
}

// FieldInputID is the element id of a field's input.
func FieldInputID(form, field string) string {
	return form + "-" + field
}

// FieldError renders the error element of a field. Only an invalid field shows
// a message; other states render the element hidden and empty so it can be
// patched later.
func FieldError(form, field string, st fieldstate.State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		id := attr(FieldErrorID(form, field))
		if !st.IsInvalid() {
			_, err := fmt.Fprintf(w, `<p id="%s" class="%s" data-state="%s" hidden></p>`, id, ErrorClass, attr(st.Name()))
			return err
		}
		_, err := fmt.Fprintf(w, `<p id="%s" class="%s" data-state="%s" role="alert">%s</p>`,
			id, ErrorClass, attr(st.Name()), text(st.Message))
		return err
	})
}
