package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failing field of a blocked submission.
type ValidationError struct {
	Field   string
	Message string
	Rule    string
}

// ValidationErrors lists the failing fields of a submission in form order.
// Each field appears once, with the message of its first failing rule.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("form has invalid fields")
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(e.Field)
		if e.Rule != "" {
			b.WriteString(" (" + e.Rule + ")")
		}
	}
	return b.String()
}

// Map groups messages by field, the shape of JSON error details.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string][]string, len(ve))
	for _, e := range ve {
		m[e.Field] = append(m[e.Field], e.Message)
	}
	return m
}

// AsValidationErrors finds ValidationErrors in err's chain.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if err == nil || !errors.As(err, &ve) {
		return nil, false
	}
	return ve, true
}
