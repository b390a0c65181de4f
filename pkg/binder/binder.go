package binder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/formspec"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used for bind and state transition events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.log = l
		}
	}
}

// Binder compiles form declarations and keeps the set of bound forms.
// It is safe for concurrent use; BoundForm values are immutable.
type Binder struct {
	reg   *validator.Registry
	log   *slog.Logger
	mu    sync.RWMutex
	forms map[string]*BoundForm
	order []string
}

// New creates a Binder that compiles rules against reg.
func New(reg *validator.Registry, opts ...Option) *Binder {
	b := &Binder{
		reg:   reg,
		log:   logger.Nop(),
		forms: make(map[string]*BoundForm),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("binder"))
	return b
}

func (b *Binder) Registry() *validator.Registry {
	return b.reg
}

// Bind compiles a form declaration. If a form with the same name is already
// bound it is returned as is. Every configuration error of the form is
// reported, each wrapped in a *FieldError.
func (b *Binder) Bind(form formspec.Form) (*BoundForm, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if bound, ok := b.forms[form.Name]; ok {
		b.log.Debug("form already bound", logger.Form(form.Name))
		return bound, nil
	}

	if err := form.Check(); err != nil {
		return nil, err
	}

	bound := &BoundForm{
		name:   form.Name,
		fields: make([]BoundField, 0, len(form.Fields)),
		index:  make(map[string]int, len(form.Fields)),
		log:    b.log.With(logger.Form(form.Name)),
	}

	var errs []error
	for _, decl := range form.Fields {
		rules, err := b.reg.CompileString(decl.Rules)
		if err != nil {
			errs = append(errs, &FieldError{Form: form.Name, Field: decl.Name, Err: err})
			continue
		}
		bound.index[decl.Name] = len(bound.fields)
		bound.fields = append(bound.fields, BoundField{Decl: decl, Rules: rules})
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		b.log.Error("form declaration rejected", logger.Form(form.Name), logger.Error(err))
		return nil, err
	}

	b.forms[form.Name] = bound
	b.order = append(b.order, form.Name)
	b.log.Debug("form bound", logger.Form(form.Name), logger.Count("fields", len(bound.fields)))
	return bound, nil
}

// BindAll binds every form of a document and joins all errors.
func (b *Binder) BindAll(doc formspec.Document) error {
	var errs []error
	for _, form := range doc.Forms {
		if _, err := b.Bind(form); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BindStruct binds a form declared through struct tags.
func (b *Binder) BindStruct(name string, v any) (*BoundForm, error) {
	form, err := formspec.FromStruct(name, v)
	if err != nil {
		return nil, err
	}
	return b.Bind(form)
}

func (b *Binder) Form(name string) (*BoundForm, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if f, ok := b.forms[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

// Forms returns bound forms in bind order.
func (b *Binder) Forms() []*BoundForm {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*BoundForm, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.forms[name])
	}
	return out
}
