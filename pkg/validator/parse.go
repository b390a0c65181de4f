package validator

import "strings"

// RuleSpec is one parsed element of a field's rule declaration.
// HasParam distinguishes "minLength" from "minLength:".
type RuleSpec struct {
	ID       string
	Param    string
	HasParam bool
}

func (s RuleSpec) String() string {
	if !s.HasParam {
		return s.ID
	}
	return s.ID + ":" + s.Param
}

// Parse splits a declaration like "required, minLength:8" into RuleSpecs.
// Elements are trimmed and split at the first colon. Elements with an empty
// rule id are dropped; an empty declaration yields an empty slice.
func Parse(decl string) []RuleSpec {
	specs := make([]RuleSpec, 0, strings.Count(decl, ",")+1)
	for part := range strings.SplitSeq(decl, ",") {
		id, param, hasParam := strings.Cut(strings.TrimSpace(part), ":")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		specs = append(specs, RuleSpec{
			ID:       id,
			Param:    strings.TrimSpace(param),
			HasParam: hasParam,
		})
	}
	return specs
}

// Format renders specs back into declaration form.
func Format(specs []RuleSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
