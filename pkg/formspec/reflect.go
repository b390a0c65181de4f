package formspec

import (
	"fmt"
	"reflect"
	"strings"
)

// Struct tags read by FromStruct.
const (
	TagValidate = "validate"
	TagForm     = "form"
	TagLabel    = "label"
)

// FromStruct builds a form declaration from the validate tags of a struct.
// Fields without a validate tag, with validate:"-", or unexported are skipped.
// The field name comes from the form tag, else the lowercased Go name.
func FromStruct(name string, v any) (Form, error) {
	rt := reflect.TypeOf(v)
	if rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return Form{}, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}

	form := Form{Name: name}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		rules, ok := sf.Tag.Lookup(TagValidate)
		if !ok || rules == "-" {
			continue
		}

		fieldName, skip := parseFormTag(sf)
		if skip {
			continue
		}

		form.Fields = append(form.Fields, FieldDecl{
			Name:  fieldName,
			Label: sf.Tag.Get(TagLabel),
			Rules: rules,
		})
	}

	if err := form.Check(); err != nil {
		return Form{}, err
	}
	return form, nil
}

// parseFormTag mirrors the request binder: `form:"-"` skips, options after a
// comma are ignored.
func parseFormTag(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get(TagForm)
	if tag == "-" {
		return "", true
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return strings.ToLower(sf.Name), false
}
