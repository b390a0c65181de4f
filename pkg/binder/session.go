package binder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/fieldstate"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Session holds the field states of one rendered instance of a form.
type Session struct {
	form     *BoundForm
	mu       sync.Mutex
	machines map[string]*fieldstate.Machine
}

// NewSession creates a session with every field Untouched.
func (f *BoundForm) NewSession() *Session {
	s := &Session{
		form:     f,
		machines: make(map[string]*fieldstate.Machine, len(f.fields)),
	}
	for _, bf := range f.fields {
		s.machines[bf.Name()] = fieldstate.New(fieldstate.WithAction(f.logTransition(bf.Name())))
	}
	return s
}

func (f *BoundForm) logTransition(field string) fieldstate.Action {
	return func(ctx context.Context, from, to fieldstate.State, _ fieldstate.Event, v validator.Verdict) error {
		f.log.DebugContext(ctx, "field state changed",
			logger.Field(field),
			logger.Transition(from.Name(), to.Name()),
			logger.Rule(v.Rule),
		)
		return nil
	}
}

func (s *Session) Form() *BoundForm {
	return s.form
}

// Touch validates one field, as on input or blur, and advances its state.
func (s *Session) Touch(ctx context.Context, field, value string) (fieldstate.State, validator.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[field]
	if !ok {
		return fieldstate.State{}, validator.Verdict{}, fmt.Errorf("%w: %q in form %q", ErrUnknownField, field, s.form.name)
	}

	v, err := s.form.ValidateField(field, value)
	if err != nil {
		return fieldstate.State{}, validator.Verdict{}, err
	}
	st, err := m.Apply(ctx, v)
	return st, v, err
}

// Submit validates every field and advances every field's state, including
// fields after the first failure.
func (s *Session) Submit(ctx context.Context, values Values) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.form.Submit(values)
	for _, fr := range sub.Result.Fields {
		st, err := s.machines[fr.Ref].Apply(ctx, fr.Verdict)
		if err != nil {
			return sub, err
		}
		sub.States[fr.Ref] = st
	}
	return sub, nil
}

// State returns the current state of a field.
func (s *Session) State(field string) (fieldstate.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[field]
	if !ok {
		return fieldstate.State{}, false
	}
	return m.Current(), true
}

// States returns a snapshot of every field's state.
func (s *Session) States() map[string]fieldstate.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]fieldstate.State, len(s.machines))
	for name, m := range s.machines {
		out[name] = m.Current()
	}
	return out
}

// Reset returns every field to Untouched.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for name, m := range s.machines {
		if err := m.Reset(ctx); err != nil {
			errs = append(errs, fmt.Errorf("reset %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
