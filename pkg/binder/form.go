package binder

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/formguard/pkg/fieldstate"
	"github.com/dmitrymomot/formguard/pkg/formspec"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Values are submitted field values keyed by field name. A missing key is
// the empty string.
type Values map[string]string

// BoundField is a declared field with its compiled rules.
type BoundField struct {
	Decl  formspec.FieldDecl
	Rules validator.FieldRules
}

func (f BoundField) Name() string {
	return f.Decl.Name
}

// BoundForm is a compiled form declaration. It is immutable.
type BoundForm struct {
	name   string
	fields []BoundField
	index  map[string]int
	log    *slog.Logger
}

func (f *BoundForm) Name() string {
	return f.name
}

// Fields returns the fields in declaration order.
func (f *BoundForm) Fields() []BoundField {
	return slices.Clone(f.fields)
}

func (f *BoundForm) Field(name string) (BoundField, bool) {
	i, ok := f.index[name]
	if !ok {
		return BoundField{}, false
	}
	return f.fields[i], true
}

// Decl returns the declaration the form was bound from.
func (f *BoundForm) Decl() formspec.Form {
	form := formspec.Form{Name: f.name, Fields: make([]formspec.FieldDecl, len(f.fields))}
	for i, bf := range f.fields {
		form.Fields[i] = bf.Decl
	}
	return form
}

// ValidateField validates one field value.
func (f *BoundForm) ValidateField(name, value string) (validator.Verdict, error) {
	bf, ok := f.Field(name)
	if !ok {
		return validator.Verdict{}, fmt.Errorf("%w: %q in form %q", ErrUnknownField, name, f.name)
	}
	return bf.Rules.Validate(value), nil
}

// Submit validates every field in declaration order. Values for undeclared
// fields are ignored.
func (f *BoundForm) Submit(values Values) Submission {
	fields := make([]validator.Field[string], len(f.fields))
	for i, bf := range f.fields {
		fields[i] = validator.Field[string]{
			Ref:   bf.Name(),
			Rules: bf.Rules,
			Value: values[bf.Name()],
		}
	}

	sub := Submission{
		Form:   f.name,
		Result: validator.ValidateAll(fields),
	}
	sub.States = make(map[string]fieldstate.State, len(f.fields))
	for _, fr := range sub.Result.Fields {
		if fr.Verdict.OK {
			sub.States[fr.Ref] = fieldstate.State{Status: fieldstate.Valid}
		} else {
			sub.States[fr.Ref] = fieldstate.State{Status: fieldstate.Invalid, Message: fr.Verdict.Message}
		}
	}

	f.logSubmission(sub)
	return sub
}

func (f *BoundForm) logSubmission(sub Submission) {
	if sub.Allowed() {
		f.log.Debug("submission allowed")
		return
	}
	first, _ := sub.FirstInvalid()
	f.log.Debug("submission blocked",
		logger.Field(first),
		logger.Count("invalid_fields", len(sub.Result.Invalid())),
	)
}

// Submission is the outcome of one submission attempt.
type Submission struct {
	Form   string
	Result validator.FormResult[string]
	States map[string]fieldstate.State
}

// Allowed reports whether the native submission may proceed.
func (s Submission) Allowed() bool {
	return s.Result.AllValid
}

// FirstInvalid returns the name of the first failing field in form order.
func (s Submission) FirstInvalid() (string, bool) {
	return s.Result.FirstInvalid()
}

// Verdict returns the verdict of a single field.
func (s Submission) Verdict(field string) (validator.Verdict, bool) {
	for _, fr := range s.Result.Fields {
		if fr.Ref == field {
			return fr.Verdict, true
		}
	}
	return validator.Verdict{}, false
}

// Err returns validator.ValidationErrors when the submission is blocked.
func (s Submission) Err() error {
	return s.Result.Err()
}
