package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/fieldstate"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Attribute carrying a field's rule declaration.
const ValidateAttr = "data-validate"

// Routes tells Form where the validation endpoints of a form live.
type Routes struct {
	Submit string
	Field  func(field string) string
}

// FormID is the element id of a rendered form.
func FormID(form string) string {
	return "formguard-" + form
}

// Form renders a bound form. Every input carries its rule declaration in
// data-validate, validates on blur through Datastar, and the form validates
// as a whole on submit. states may be nil; missing fields render Untouched.
func Form(f *binder.BoundForm, routes Routes, states map[string]fieldstate.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form id="%s" novalidate data-on-submit="%s">`,
			attr(FormID(f.Name())), attr(post(routes.Submit))); err != nil {
			return err
		}

		for _, bf := range f.Fields() {
			if err := field(ctx, w, f.Name(), bf, routes, states[bf.Name()]); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<button type="submit">Submit</button></form>`)
		return err
	})
}

func field(ctx context.Context, w io.Writer, form string, bf binder.BoundField, routes Routes, st fieldstate.State) error {
	id := FieldInputID(form, bf.Name())
	onBlur := ""
	if routes.Field != nil {
		onBlur = fmt.Sprintf(` data-on-blur="%s"`, attr(post(routes.Field(bf.Name()))))
	}

	_, err := fmt.Fprintf(w,
		`<div class="formguard-field"><label for="%s">%s</label><input id="%s" name="%s" type="%s" %s="%s" aria-describedby="%s"%s>`,
		attr(id), text(bf.Decl.DisplayName()),
		attr(id), attr(bf.Name()), inputType(bf.Rules),
		ValidateAttr, attr(bf.Decl.Rules),
		attr(FieldErrorID(form, bf.Name())), onBlur,
	)
	if err != nil {
		return err
	}

	if st.Status == "" {
		st = fieldstate.State{Status: fieldstate.Untouched}
	}
	if err := FieldError(form, bf.Name(), st).Render(ctx, w); err != nil {
		return err
	}
	_, err = io.WriteString(w, `</div>`)
	return err
}

func inputType(rules validator.FieldRules) string {
	switch {
	case rules.Has(validator.KindEmail):
		return "email"
	case rules.Has(validator.KindPhone):
		return "tel"
	}
	return "text"
}

func post(url string) string {
	return fmt.Sprintf("@post('%s', {contentType: 'form'})", url)
}
