package api

import (
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
)

// formRequest is what the form routes bind from a request.
type formRequest struct {
	form   *binder.BoundForm
	field  string
	values binder.Values
}

func (a *API) bindForm(r *http.Request, req *formRequest) error {
	f, err := a.binder.Form(chi.URLParam(r, "form"))
	if err != nil {
		return handler.ErrNotFound.WithCause(err)
	}
	req.form = f
	return nil
}

func (a *API) bindField(r *http.Request, req *formRequest) error {
	name := chi.URLParam(r, "field")
	if _, ok := req.form.Field(name); !ok {
		return handler.ErrNotFound.WithCause(binder.ErrUnknownField)
	}
	req.field = name
	return nil
}

func (a *API) bindValues(r *http.Request, req *formRequest) error {
	values, err := readValues(r)
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return handler.ErrUnsupportedMediaType.WithCause(err)
	case err != nil:
		return handler.ErrBadRequest.WithCause(err)
	}
	req.values = values
	return nil
}

// readValues reads Datastar signals for Datastar JSON requests and the body
// otherwise.
func readValues(r *http.Request) (binder.Values, error) {
	if handler.IsDataStar(r) && isJSON(r) {
		var signals map[string]any
		if err := handler.ReadSignals(r, &signals); err != nil {
			return nil, errors.Join(binder.ErrInvalidBody, err)
		}
		return valuesFromSignals(signals)
	}
	return binder.ValuesFromRequest(r)
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}

// valuesFromSignals takes field values from a "values" signal object when
// present, or from the top-level scalar signals.
func valuesFromSignals(signals map[string]any) (binder.Values, error) {
	if nested, ok := signals["values"].(map[string]any); ok {
		return binder.ValuesFromMap(nested)
	}
	scalars := make(map[string]any, len(signals))
	for k, v := range signals {
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		scalars[k] = v
	}
	return binder.ValuesFromMap(scalars)
}
