// Package fieldstate tracks the validation state of a single form field.
//
// A field starts Untouched. Every validation request fires the validate event
// with the field's fresh Verdict; guards on the transition table pick Valid
// or Invalid. There is no terminal state and nothing is memoized: the state
// after Apply is derived only from the verdict passed in.
//
//	m := fieldstate.New()
//	st, _ := m.Apply(ctx, rules.Validate(value))
//	if st.Status == fieldstate.Invalid {
//	    render(st.Message)
//	}
//
// Actions registered with WithAction run on every transition before the state
// changes; returning an error aborts the transition. The binder uses them for
// logging.
//
// Machine guards its state with a RWMutex, but a field is expected to be
// driven by one control flow at a time.
package fieldstate
