package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies a built-in rule. The set is closed: any identifier that
// does not resolve to a Kind is KindUnknown and always passes.
type Kind int

const (
	KindUnknown Kind = iota
	KindRequired
	KindEmail
	KindPhone
	KindMinLength
	KindMaxLength
)

// Rule identifiers as written in declarations.
const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RulePhone     = "phone"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
)

// User-facing messages.
const (
	MsgRequired       = "This field is required"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgBusinessEmail  = "Please use your business email address"
	MsgInvalidPhone   = "Please enter a valid phone number"
	msgMinLengthTempl = "Must be at least %d characters"
	msgMaxLengthTempl = "Must be no more than %d characters"
)

var kindIDs = [...]string{
	KindUnknown:   "",
	KindRequired:  RuleRequired,
	KindEmail:     RuleEmail,
	KindPhone:     RulePhone,
	KindMinLength: RuleMinLength,
	KindMaxLength: RuleMaxLength,
}

var (
	// local@domain.tld, no whitespace and exactly one "@"
	emailRegex = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

	// +1 (555) 123-4567, 555.123.4567, 5551234567, 555-123-456789
	phoneRegex = regexp.MustCompile(`^\+?(?:[0-9]{1,3}[-\s.]?)?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// KindOf resolves a rule identifier. Identifiers are case-sensitive.
func KindOf(id string) Kind {
	for k, name := range kindIDs {
		if name != "" && name == id {
			return Kind(k)
		}
	}
	return KindUnknown
}

// Kinds lists the built-in rule kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindRequired, KindEmail, KindPhone, KindMinLength, KindMaxLength}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindIDs) || k == KindUnknown {
		return "unknown"
	}
	return kindIDs[k]
}

// NeedsParam reports whether the kind requires a numeric parameter.
func (k Kind) NeedsParam() bool {
	return k == KindMinLength || k == KindMaxLength
}

// Length returns the number of characters in value as a user perceives it:
// code points after NFC normalization.
func Length(value string) int {
	return utf8.RuneCountInString(norm.NFC.String(value))
}

func checkRequired(value string) Verdict {
	if strings.TrimSpace(value) == "" {
		return fail(RuleRequired, MsgRequired)
	}
	return Pass()
}

func checkEmail(value string, denied func(domain string) bool) Verdict {
	if !emailRegex.MatchString(value) {
		return fail(RuleEmail, MsgInvalidEmail)
	}
	_, domain, _ := strings.Cut(value, "@")
	if denied(domain) {
		return fail(RuleEmail, MsgBusinessEmail)
	}
	return Pass()
}

func checkPhone(value string) Verdict {
	if !phoneRegex.MatchString(value) {
		return fail(RulePhone, MsgInvalidPhone)
	}
	return Pass()
}

func checkMinLength(value string, n int) Verdict {
	if Length(value) < n {
		return fail(RuleMinLength, fmt.Sprintf(msgMinLengthTempl, n))
	}
	return Pass()
}

func checkMaxLength(value string, n int) Verdict {
	if Length(value) > n {
		return fail(RuleMaxLength, fmt.Sprintf(msgMaxLengthTempl, n))
	}
	return Pass()
}
