package formspec

import (
	"fmt"
	"strings"
)

// FieldDecl declares one field. Rules is the raw rule declaration.
type FieldDecl struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Rules string `yaml:"rules,omitempty" json:"rules"`
}

// DisplayName returns the label, falling back to the field name.
func (f FieldDecl) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Form declares a form. Field order is document order.
type Form struct {
	Name   string      `yaml:"name" json:"name"`
	Fields []FieldDecl `yaml:"fields" json:"fields"`
}

// Field looks up a field declaration by name.
func (f Form) Field(name string) (FieldDecl, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return FieldDecl{}, false
}

// Check verifies names are present and unique.
func (f Form) Check() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: form without a name", ErrInvalidDocument)
	}
	seen := make(map[string]bool, len(f.Fields))
	for i, fd := range f.Fields {
		if strings.TrimSpace(fd.Name) == "" {
			return fmt.Errorf("%w: form %q: field #%d has no name", ErrInvalidDocument, f.Name, i)
		}
		if seen[fd.Name] {
			return fmt.Errorf("%w: form %q: duplicate field %q", ErrInvalidDocument, f.Name, fd.Name)
		}
		seen[fd.Name] = true
	}
	return nil
}

// Document is a set of form declarations.
type Document struct {
	Forms []Form `yaml:"forms" json:"forms"`
}

// Form looks up a form declaration by name.
func (d Document) Form(name string) (Form, bool) {
	for _, f := range d.Forms {
		if f.Name == name {
			return f, true
		}
	}
	return Form{}, false
}

// Check verifies every form and that form names are unique.
func (d Document) Check() error {
	seen := make(map[string]bool, len(d.Forms))
	for _, f := range d.Forms {
		if err := f.Check(); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate form %q", ErrInvalidDocument, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
