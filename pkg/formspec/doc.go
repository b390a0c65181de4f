// Package formspec loads form declarations: the ordered list of fields a form
// has and the rule declaration each field carries.
//
// Declarations come from YAML documents:
//
//	forms:
//	  - name: contact
//	    fields:
//	      - name: email
//	        label: Work email
//	        rules: required,email
//	      - name: phone
//	        rules: phone
//
// or from Go structs, where the validate tag plays the role of the marker
// attribute and field order is struct order:
//
//	type Contact struct {
//	    Email string `form:"email" validate:"required,email"`
//	    Phone string `form:"phone" validate:"phone"`
//	}
//
//	form, err := formspec.FromStruct("contact", Contact{})
//
// Rule declarations are kept as raw strings here; compiling them against a
// rule registry happens in the binder.
package formspec
