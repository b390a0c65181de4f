package validator

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// defaultDeniedDomains are free consumer-mail providers rejected by the email rule.
var defaultDeniedDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"aol.com",
	"icloud.com",
	"mail.com",
	"protonmail.com",
}

// DefaultDeniedDomains returns a copy of the default consumer-mail deny-list.
func DefaultDeniedDomains() []string {
	return slices.Clone(defaultDeniedDomains)
}

// Option configures a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	deniedDomains []string
}

// WithDeniedDomains replaces the deny-list used by the email rule.
// Calling it with no domains disables the business-email check.
func WithDeniedDomains(domains ...string) Option {
	return func(c *registryConfig) {
		c.deniedDomains = slices.Clone(domains)
	}
}

// Registry maps rule specs to evaluators. It is immutable after construction.
type Registry struct {
	denied map[string]struct{}
}

// NewRegistry builds a Registry. Without options the default deny-list applies.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := &registryConfig{deniedDomains: DefaultDeniedDomains()}
	for _, opt := range opts {
		opt(cfg)
	}

	denied := make(map[string]struct{}, len(cfg.deniedDomains))
	for _, d := range cfg.deniedDomains {
		domain, err := normalizeDomain(d)
		if err != nil {
			return nil, err
		}
		denied[domain] = struct{}{}
	}

	return &Registry{denied: denied}, nil
}

// MustNewRegistry works like NewRegistry but panics on misconfiguration.
func MustNewRegistry(opts ...Option) *Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create rule registry: %v", err))
	}
	return r
}

func normalizeDomain(d string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(d))
	if domain == "" {
		return "", fmt.Errorf("%w: empty entry", ErrInvalidDeniedDomain)
	}
	if strings.Contains(domain, "@") || strings.IndexFunc(domain, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeniedDomain, d)
	}
	return domain, nil
}

// DeniedDomains returns the deny-list, sorted.
func (r *Registry) DeniedDomains() []string {
	domains := make([]string, 0, len(r.denied))
	for d := range r.denied {
		domains = append(domains, d)
	}
	slices.Sort(domains)
	return domains
}

// IsDenied reports whether domain is on the deny-list, ignoring case.
func (r *Registry) IsDenied(domain string) bool {
	_, ok := r.denied[strings.ToLower(domain)]
	return ok
}

// Evaluate applies a single rule to value. Unknown rules pass. The only error
// is a *ConfigError for a missing or non-numeric length parameter.
func (r *Registry) Evaluate(spec RuleSpec, value string) (Verdict, error) {
	rule, err := r.compile(spec)
	if err != nil {
		return Verdict{}, err
	}
	return rule.apply(value), nil
}

// Compile resolves specs into FieldRules. All configuration errors are
// reported together.
func (r *Registry) Compile(specs []RuleSpec) (FieldRules, error) {
	rules := make([]compiledRule, 0, len(specs))
	var errs []error
	for _, spec := range specs {
		rule, err := r.compile(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rules = append(rules, rule)
	}
	if len(errs) > 0 {
		return FieldRules{}, errors.Join(errs...)
	}
	return FieldRules{rules: rules, specs: slices.Clone(specs)}, nil
}

// CompileString parses and compiles a declaration in one step.
func (r *Registry) CompileString(decl string) (FieldRules, error) {
	return r.Compile(Parse(decl))
}

func (r *Registry) compile(spec RuleSpec) (compiledRule, error) {
	kind := KindOf(spec.ID)
	rule := compiledRule{kind: kind, registry: r}
	if !kind.NeedsParam() {
		return rule, nil
	}

	if !spec.HasParam || spec.Param == "" {
		return compiledRule{}, newConfigError(spec, nil)
	}
	n, err := strconv.Atoi(spec.Param)
	if err != nil {
		return compiledRule{}, newConfigError(spec, err)
	}
	if n < 0 {
		return compiledRule{}, newConfigError(spec, errors.New("must not be negative"))
	}
	rule.n = n
	return rule, nil
}

type compiledRule struct {
	kind     Kind
	n        int
	registry *Registry
}

func (c compiledRule) apply(value string) Verdict {
	switch c.kind {
	case KindRequired:
		return checkRequired(value)
	case KindEmail:
		return checkEmail(value, c.registry.IsDenied)
	case KindPhone:
		return checkPhone(value)
	case KindMinLength:
		return checkMinLength(value, c.n)
	case KindMaxLength:
		return checkMaxLength(value, c.n)
	case KindUnknown:
		return Pass()
	}
	return Pass()
}
