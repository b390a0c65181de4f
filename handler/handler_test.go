package handler_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

type greetRequest struct {
	Name string
}

func TestWrap(t *testing.T) {
	t.Parallel()

	bindName := func(r *http.Request, req *greetRequest) error {
		req.Name = r.URL.Query().Get("name")
		if req.Name == "" {
			return handler.ErrBadRequest.WithCause(errors.New("name is required"))
		}
		return nil
	}
	greet := func(_ handler.Context, req greetRequest) handler.Response {
		return handler.JSON(map[string]string{"hello": req.Name})
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders(bindName))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=jane", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"hello":"jane"}}`, rec.Body.String())
	})

	t.Run("binder errors go to the error handler", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		h := handler.Wrap(greet,
			handler.WithBinders(bindName),
			handler.WithLogger[greetRequest](logger.New(logger.WithOutput(buf))),
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"bad_request","message":"name is required"}}`, rec.Body.String())
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status":400`)
	})

	t.Run("decorators wrap in order", func(t *testing.T) {
		t.Parallel()
		var calls []string
		mark := func(name string) handler.Decorator[greetRequest] {
			return func(next handler.HandlerFunc[greetRequest]) handler.HandlerFunc[greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					calls = append(calls, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(greet, handler.WithBinders(bindName), handler.WithDecorators(mark("outer"), mark("inner")))
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?name=x", nil))
		assert.Equal(t, []string{"outer", "inner"}, calls)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(handler.Context, greetRequest) handler.Response { return nil },
			handler.WithErrorHandler[greetRequest](func(_ handler.Context, err error) { got = err }),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Error(t, got)
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, greetRequest) handler.Response {
			return handler.JSONError(errors.New("db password is hunter2"))
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})
}
