package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned when a rule parameter that must be numeric is missing or malformed.
	ErrInvalidParam = errors.New("invalid rule parameter")

	// ErrInvalidDeniedDomain is returned when a deny-list entry is not a bare domain name.
	ErrInvalidDeniedDomain = errors.New("invalid denied email domain")
)

// ConfigError describes a static declaration bug found while compiling rules.
// It always matches ErrInvalidParam with errors.Is.
type ConfigError struct {
	Rule     string
	Param    string
	HasParam bool
	Err      error // underlying parse error, may be nil
}

func (e *ConfigError) Error() string {
	if !e.HasParam {
		return fmt.Sprintf("rule %q: missing numeric parameter", e.Rule)
	}
	if e.Err != nil {
		return fmt.Sprintf("rule %q: invalid parameter %q: %v", e.Rule, e.Param, e.Err)
	}
	return fmt.Sprintf("rule %q: invalid parameter %q", e.Rule, e.Param)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidParam
}

func newConfigError(spec RuleSpec, cause error) *ConfigError {
	return &ConfigError{
		Rule:     spec.ID,
		Param:    spec.Param,
		HasParam: spec.HasParam,
		Err:      cause,
	}
}

// IsConfigError reports whether err (or anything it wraps) is a *ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
