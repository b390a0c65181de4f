// Package validator implements the declarative rule engine behind formguard.
//
// A field declares its rules as a comma-separated string such as
// "required,minLength:8". Parse turns that declaration into an ordered list of
// RuleSpec values, a Registry resolves each RuleSpec to one of the built-in
// rule kinds, and the resulting FieldRules evaluate a field value into a
// single Verdict. ValidateAll applies FieldRules to every field of a form and
// decides whether the form may be submitted.
//
// # Architecture
//
// The package is split by responsibility:
//   - parse.go     – declaration parsing (never fails, drops malformed items)
//   - rules.go     – the closed set of rule kinds and their evaluators
//   - registry.go  – Registry construction, deny-list, compilation
//   - field.go     – ordered, short-circuiting field validation
//   - form.go      – form-level aggregation and submission gating
//   - invalid_fields.go – ValidationErrors, the error form of a blocked submission
//
// Everything is pure and synchronous. A Registry is read-only after
// construction and can be shared between goroutines. There is no package
// level Registry; build one with NewRegistry and pass it around.
//
// # Usage
//
//	reg := validator.MustNewRegistry() // default consumer-mail deny-list
//
//	email, err := reg.CompileString("required,email")
//	if err != nil {
//	    // static declaration bug, e.g. "minLength:abc"
//	}
//
//	result := validator.ValidateAll([]validator.Field[string]{
//	    {Ref: "email", Rules: email, Value: "user@gmail.com"},
//	})
//	if ref, ok := result.FirstInvalid(); ok {
//	    // block submission, scroll to ref
//	}
//
// # Error Handling
//
// Validation failures are data: a Verdict with OK == false and a message.
// Errors are reserved for configuration problems: a missing or non-numeric
// parameter for minLength/maxLength yields a *ConfigError, and an invalid
// deny-list entry makes NewRegistry fail with ErrInvalidDeniedDomain.
// Unknown rule identifiers are not errors; they always pass.
package validator
