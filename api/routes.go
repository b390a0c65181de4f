package api

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/fieldstate"
	"github.com/dmitrymomot/formguard/pkg/validator"
	"github.com/dmitrymomot/formguard/view"
)

// SignalsKey is the Datastar signal holding per-field verdicts.
const SignalsKey = "formguard"

// FirstInvalidSignal names the first failing field after a submit, or "".
const FirstInvalidSignal = "firstInvalid"

type fieldInfo struct {
	Name  string   `json:"name"`
	Label string   `json:"label,omitempty"`
	Rules string   `json:"rules"`
	Kinds []string `json:"kinds"`
}

type formInfo struct {
	Name   string      `json:"name"`
	Fields []fieldInfo `json:"fields"`
}

func describe(f *binder.BoundForm) formInfo {
	info := formInfo{Name: f.Name(), Fields: make([]fieldInfo, 0, len(f.Fields()))}
	for _, bf := range f.Fields() {
		kinds := make([]string, 0, bf.Rules.Len())
		for _, spec := range bf.Rules.Specs() {
			kinds = append(kinds, validator.KindOf(spec.ID).String())
		}
		info.Fields = append(info.Fields, fieldInfo{
			Name:  bf.Name(),
			Label: bf.Decl.Label,
			Rules: bf.Rules.String(),
			Kinds: kinds,
		})
	}
	return info
}

type fieldSignal struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func signalOf(v validator.Verdict) fieldSignal {
	return fieldSignal{Valid: v.OK, Message: v.Message}
}

type fieldResult struct {
	Form    string           `json:"form"`
	Field   string           `json:"field"`
	Valid   bool             `json:"valid"`
	Message string           `json:"message,omitempty"`
	Rule    string           `json:"rule,omitempty"`
	State   fieldstate.State `json:"state"`
}

func (a *API) wrap(h handler.HandlerFunc[formRequest], binders ...handler.Bind[formRequest]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders(binders...),
		handler.WithLogger[formRequest](a.log),
	)
}

func (a *API) listForms() http.HandlerFunc {
	return a.wrap(func(_ handler.Context, _ formRequest) handler.Response {
		forms := a.binder.Forms()
		out := make([]formInfo, 0, len(forms))
		for _, f := range forms {
			out = append(out, describe(f))
		}
		return handler.JSON(out)
	})
}

func (a *API) showForm() http.HandlerFunc {
	return a.wrap(func(ctx handler.Context, req formRequest) handler.Response {
		r := ctx.Request()
		if handler.IsDataStar(r) || strings.Contains(r.Header.Get("Accept"), "text/html") {
			return handler.Templ(handler.Patch(view.Form(req.form, a.viewRoutes(req.form.Name()), nil)))
		}
		return handler.JSON(describe(req.form))
	}, a.bindForm)
}

func (a *API) validateForm() http.HandlerFunc {
	return a.wrap(func(ctx handler.Context, req formRequest) handler.Response {
		sub, err := req.form.NewSession().Submit(ctx, req.values)
		if err != nil {
			return handler.JSONError(err)
		}
		first, _ := sub.FirstInvalid()

		if handler.IsDataStar(ctx.Request()) {
			fields := make(map[string]fieldSignal, len(sub.Result.Fields))
			patches := make([]handler.TemplPatch, 0, len(sub.Result.Fields))
			for _, fr := range sub.Result.Fields {
				fields[fr.Ref] = signalOf(fr.Verdict)
				patches = append(patches, handler.Patch(view.FieldError(sub.Form, fr.Ref, sub.States[fr.Ref])))
			}
			return handler.Signals(map[string]any{
				SignalsKey:         fields,
				FirstInvalidSignal: first,
			}, patches...)
		}

		if sub.Allowed() {
			return handler.JSON(map[string]bool{"valid": true})
		}
		return handler.JSONError(sub.Err(), handler.WithJSONMeta(map[string]any{"first_invalid": first}))
	}, a.bindForm, a.bindValues)
}

func (a *API) validateField() http.HandlerFunc {
	return a.wrap(func(ctx handler.Context, req formRequest) handler.Response {
		st, v, err := req.form.NewSession().Touch(ctx, req.field, req.values[req.field])
		if err != nil {
			return handler.JSONError(err)
		}

		if handler.IsDataStar(ctx.Request()) {
			return handler.Signals(
				map[string]any{SignalsKey: map[string]fieldSignal{req.field: signalOf(v)}},
				handler.Patch(view.FieldError(req.form.Name(), req.field, st)),
			)
		}
		return handler.JSON(fieldResult{
			Form:    req.form.Name(),
			Field:   req.field,
			Valid:   v.OK,
			Message: v.Message,
			Rule:    v.Rule,
			State:   st,
		})
	}, a.bindForm, a.bindField, a.bindValues)
}

func (a *API) viewRoutes(form string) view.Routes {
	base := a.basePath + "/forms/" + form
	return view.Routes{
		Submit: base + "/validate",
		Field: func(field string) string {
			return base + "/fields/" + field + "/validate"
		},
	}
}
