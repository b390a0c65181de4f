// Package binder connects form declarations to the rule engine and owns the
// state the engine itself never keeps.
//
// A Binder compiles each declared form once against a validator.Registry.
// Configuration errors (for example "minLength:abc") surface here, at bind
// time, instead of turning into silent passes later. Binding a form name that
// is already bound returns the existing BoundForm: the binder keeps the set of
// bound identities explicitly rather than marking the form itself.
//
//	b := binder.New(reg, binder.WithLogger(log))
//	if err := b.BindAll(doc); err != nil {
//	    return err // every configuration error, joined
//	}
//
//	form, _ := b.Form("contact")
//	sub := form.Submit(binder.Values{"email": "user@gmail.com"})
//	if !sub.Allowed() {
//	    field, _ := sub.FirstInvalid() // scroll target
//	}
//
// A Session tracks the fieldstate.Machine of every field of one rendered form
// instance: Touch validates one field on input or blur, Submit validates all of
// them and advances every field's state, even after the first failure.
//
// ValuesFromRequest extracts submitted values from url-encoded, multipart and
// JSON request bodies.
package binder
