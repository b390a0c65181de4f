package fieldstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Guard decides whether a transition applies to the verdict being processed.
type Guard func(ctx context.Context, from State, v validator.Verdict) bool

// Action runs during a transition. Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, v validator.Verdict) error

// Transition defines a state change triggered by an event.
type Transition struct {
	From    Status
	To      Status
	Event   Event
	Guards  []Guard  // all must pass
	Actions []Action // executed in order before the state changes
}

// Option configures a Machine.
type Option func(*Machine)

// WithAction registers an action that runs on every transition.
func WithAction(action Action) Option {
	return func(m *Machine) {
		if action != nil {
			m.actions = append(m.actions, action)
		}
	}
}

// Machine is the validation state machine of one field.
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[Status]map[Event][]Transition
	actions     []Action
}

func verdictOK(_ context.Context, _ State, v validator.Verdict) bool {
	return v.OK
}

func verdictFailed(_ context.Context, _ State, v validator.Verdict) bool {
	return !v.OK
}

// DefaultTransitions is the field lifecycle: any state re-validates into
// Valid or Invalid, and a touched field can be reset to Untouched.
func DefaultTransitions() []Transition {
	var ts []Transition
	for _, from := range []Status{Untouched, Valid, Invalid} {
		ts = append(ts,
			Transition{From: from, To: Valid, Event: EventValidate, Guards: []Guard{verdictOK}},
			Transition{From: from, To: Invalid, Event: EventValidate, Guards: []Guard{verdictFailed}},
		)
	}
	for _, from := range []Status{Valid, Invalid} {
		ts = append(ts, Transition{From: from, To: Untouched, Event: EventReset})
	}
	return ts
}

// New creates a field machine in the Untouched state.
func New(opts ...Option) *Machine {
	m := &Machine{
		current:     State{Status: Untouched},
		transitions: make(map[Status]map[Event][]Transition),
	}
	for _, t := range DefaultTransitions() {
		// DefaultTransitions only holds well-formed entries.
		_ = m.addTransition(t)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) addTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}
	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[Event][]Transition)
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
	return nil
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Apply fires the validate event with a fresh verdict and returns the new state.
func (m *Machine) Apply(ctx context.Context, v validator.Verdict) (State, error) {
	if err := m.Fire(ctx, EventValidate, v); err != nil {
		return m.Current(), err
	}
	return m.Current(), nil
}

// Fire processes an event. The first transition whose guards pass wins.
func (m *Machine) Fire(ctx context.Context, event Event, v validator.Verdict) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.match(ctx, event, v)
	if err != nil {
		return err
	}

	next := stateFor(t.To, v)
	for _, actions := range [][]Action{t.Actions, m.actions} {
		for _, action := range actions {
			if err := action(ctx, m.current, next, event, v); err != nil {
				return fmt.Errorf("action failed: %w", err)
			}
		}
	}

	m.current = next
	return nil
}

// CanFire reports whether event would cause a transition for verdict v.
func (m *Machine) CanFire(ctx context.Context, event Event, v validator.Verdict) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, event, v)
	return err == nil
}

// CanApply reports whether a validate event with verdict v would transition.
func (m *Machine) CanApply(ctx context.Context, v validator.Verdict) bool {
	return m.CanFire(ctx, EventValidate, v)
}

// Reset fires the reset event. An Untouched field is left as is.
func (m *Machine) Reset(ctx context.Context) error {
	if m.Current().IsUntouched() {
		return nil
	}
	return m.Fire(ctx, EventReset, validator.Verdict{})
}

func (m *Machine) match(ctx context.Context, event Event, v validator.Verdict) (*Transition, error) {
	from := m.current.Status
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{Status: from, Event: event}
	}

	for i, t := range candidates {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, v) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return &candidates[i], nil
		}
	}
	return nil, &ErrTransitionRejected{Status: from, Event: event}
}
