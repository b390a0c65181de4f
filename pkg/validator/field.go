package validator

import "slices"

// Verdict is the outcome of one rule or of a whole field.
// Message and Rule are empty iff OK.
type Verdict struct {
	OK      bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// Pass returns the passing verdict.
func Pass() Verdict {
	return Verdict{OK: true}
}

func fail(rule, message string) Verdict {
	return Verdict{Message: message, Rule: rule}
}

// FieldRules is a compiled, immutable rule list for one field.
// The zero value has no rules and accepts any value.
type FieldRules struct {
	rules []compiledRule
	specs []RuleSpec
}

// Validate evaluates the rules in declaration order and returns the first
// failure. Later rules are not evaluated.
func (f FieldRules) Validate(value string) Verdict {
	for _, rule := range f.rules {
		if v := rule.apply(value); !v.OK {
			return v
		}
	}
	return Pass()
}

// Specs returns the declaration the rules were compiled from.
func (f FieldRules) Specs() []RuleSpec {
	return slices.Clone(f.specs)
}

func (f FieldRules) Len() int {
	return len(f.rules)
}

// Has reports whether a rule of the given kind is declared.
func (f FieldRules) Has(kind Kind) bool {
	for _, rule := range f.rules {
		if rule.kind == kind {
			return true
		}
	}
	return false
}

func (f FieldRules) String() string {
	return Format(f.specs)
}

// Validate compiles specs and validates value against them. Use Compile once
// and FieldRules.Validate when the same declaration is checked repeatedly.
func (r *Registry) Validate(specs []RuleSpec, value string) (Verdict, error) {
	rules, err := r.Compile(specs)
	if err != nil {
		return Verdict{}, err
	}
	return rules.Validate(value), nil
}
