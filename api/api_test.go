package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/api"
	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/formspec"
	"github.com/dmitrymomot/formguard/pkg/requestid"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	doc, err := formspec.LoadFile("../pkg/formspec/testdata/forms.yaml")
	require.NoError(t, err)

	b := binder.New(validator.MustNewRegistry())
	require.NoError(t, b.BindAll(doc))
	return api.New(b).Router()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func TestHealth(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	rec = do(t, r, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, "READY", rec.Body.String())

	empty := api.New(binder.New(validator.MustNewRegistry())).Router()
	rec = do(t, empty, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListForms(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(t), httptest.NewRequest(http.MethodGet, "/forms", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Name   string `json:"name"`
			Fields []struct {
				Name  string   `json:"name"`
				Rules string   `json:"rules"`
				Kinds []string `json:"kinds"`
			} `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "contact", body.Data[0].Name)
	assert.Equal(t, "newsletter", body.Data[1].Name)
	assert.Equal(t, "required,maxLength:80", body.Data[0].Fields[0].Rules)
	assert.Equal(t, []string{"required", "maxLength"}, body.Data[0].Fields[0].Kinds)
}

func TestShowForm(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, httptest.NewRequest(http.MethodGet, "/forms/newsletter", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"newsletter"`)
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/forms/contact", nil)
		req.Header.Set("Accept", "text/html")
		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)

		html := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, html, `id="formguard-contact"`)
		assert.Contains(t, html, `data-validate="required,email"`)
		assert.Contains(t, html, `type="email"`)
		assert.Contains(t, html, `id="contact-email-error"`)
		assert.Contains(t, html, "/forms/contact/fields/email/validate")
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, httptest.NewRequest(http.MethodGet, "/forms/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode(t, rec).Error.Code)
	})
}

func TestValidateForm(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/validate", strings.NewReader(`{
			"name": "Jane Doe",
			"email": "jane@acme.io",
			"phone": "+1 (555) 123-4567",
			"message": "Hello there, team"
		}`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"data":{"valid":true}}`, rec.Body.String())
	})

	t.Run("blocked submission reports every invalid field", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/validate", formBody(url.Values{
			"name":    {"Jane"},
			"email":   {"jane@gmail.com"},
			"phone":   {"123"},
			"message": {"Hello there, team"},
		}))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := do(t, r, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, map[string][]string{
			"email": {validator.MsgBusinessEmail},
			"phone": {validator.MsgInvalidPhone},
		}, body.Error.Details)
		assert.Equal(t, "email", body.Meta["first_invalid"])
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/validate", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := do(t, r, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decode(t, rec).Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/validate", strings.NewReader(`<form/>`))
		req.Header.Set("Content-Type", "application/xml")
		rec := do(t, r, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, httptest.NewRequest(http.MethodPost, "/forms/missing/validate", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/newsletter/validate", strings.NewReader(`{"values":{"email":""}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

		body := rec.Body.String()
		assert.Contains(t, body, `"firstInvalid":"email"`)
		assert.Contains(t, body, `"formguard":{"email":{"valid":false,"message":"This field is required"}}`)
		assert.Contains(t, body, `id="newsletter-email-error"`)
		assert.Contains(t, body, "This field is required")
	})
}

func TestValidateField(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	t.Run("json verdict", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/fields/message/validate", formBody(url.Values{
			"message": {"short"},
		}))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{
			"form":"contact",
			"field":"message",
			"valid":false,
			"message":"Must be at least 10 characters",
			"rule":"minLength",
			"state":{"status":"invalid","message":"Must be at least 10 characters"}
		}}`, rec.Body.String())
	})

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/fields/phone/validate", formBody(url.Values{
			"phone": {"555.123.4567"},
		}))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
		assert.Contains(t, rec.Body.String(), `"status":"valid"`)
	})

	t.Run("datastar top-level signals", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/fields/email/validate",
			strings.NewReader(`{"email":"not-an-email","formguard":{}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, validator.MsgInvalidEmail)
		assert.Contains(t, body, `id="contact-email-error"`)
		assert.NotContains(t, body, "firstInvalid")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, httptest.NewRequest(http.MethodPost, "/forms/contact/fields/nope/validate", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouterFallbacks(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, httptest.NewRequest(http.MethodDelete, "/forms", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
