package fieldstate

import "github.com/dmitrymomot/formguard/pkg/validator"

// Status is the name of a field state.
type Status string

const (
	Untouched Status = "untouched"
	Valid     Status = "valid"
	Invalid   Status = "invalid"
)

// Event triggers a transition.
type Event string

const (
	EventValidate Event = "validate"
	EventReset    Event = "reset"
)

// State is the current status of a field. Message is set only when Invalid.
type State struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

func (s State) Name() string {
	return string(s.Status)
}

func (s State) IsUntouched() bool { return s.Status == Untouched }
func (s State) IsValid() bool     { return s.Status == Valid }
func (s State) IsInvalid() bool   { return s.Status == Invalid }

// stateFor builds the target state of a transition from the verdict that drove it.
func stateFor(to Status, v validator.Verdict) State {
	if to == Invalid {
		return State{Status: Invalid, Message: v.Message}
	}
	return State{Status: to}
}
