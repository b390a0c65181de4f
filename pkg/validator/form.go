package validator

import "fmt"

// Field is one input of a form submission. Ref identifies the field to the
// caller and is returned untouched in the result.
type Field[R any] struct {
	Ref   R
	Rules FieldRules
	Value string
}

// FieldResult pairs a field reference with its verdict.
type FieldResult[R any] struct {
	Ref     R
	Verdict Verdict
}

// FormResult is the aggregate of a submission attempt.
type FormResult[R any] struct {
	AllValid bool
	Fields   []FieldResult[R]
	first    int
}

// ValidateAll validates every field, in order, without stopping at the first
// failure so that every field's state can be refreshed.
func ValidateAll[R any](fields []Field[R]) FormResult[R] {
	res := FormResult[R]{
		AllValid: true,
		Fields:   make([]FieldResult[R], len(fields)),
		first:    -1,
	}
	for i, f := range fields {
		v := f.Rules.Validate(f.Value)
		res.Fields[i] = FieldResult[R]{Ref: f.Ref, Verdict: v}
		if !v.OK && res.first < 0 {
			res.AllValid = false
			res.first = i
		}
	}
	return res
}

// FirstInvalid returns the reference of the first failing field in form order.
func (r FormResult[R]) FirstInvalid() (R, bool) {
	if r.AllValid || r.first < 0 || r.first >= len(r.Fields) {
		var zero R
		return zero, false
	}
	return r.Fields[r.first].Ref, true
}

// Invalid returns the failing fields in form order.
func (r FormResult[R]) Invalid() []FieldResult[R] {
	var out []FieldResult[R]
	for _, f := range r.Fields {
		if !f.Verdict.OK {
			out = append(out, f)
		}
	}
	return out
}

// Err returns ValidationErrors describing failing fields, or nil when the
// form may be submitted. References are formatted with fmt.Sprint.
func (r FormResult[R]) Err() error {
	if r.AllValid {
		return nil
	}
	var errs ValidationErrors
	for _, f := range r.Invalid() {
		errs = append(errs, ValidationError{
			Field:   fmt.Sprint(f.Ref),
			Message: f.Verdict.Message,
			Rule:    f.Verdict.Rule,
		})
	}
	return errs
}
