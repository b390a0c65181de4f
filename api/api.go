package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

// ErrNoForms is reported by the readiness check while nothing is bound.
var ErrNoForms = errors.New("no forms bound")

// Option configures the API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithBasePath sets the prefix the router is mounted under. It is used for
// the endpoint URLs written into rendered forms.
func WithBasePath(prefix string) Option {
	return func(a *API) {
		a.basePath = strings.TrimRight(prefix, "/")
	}
}

// API serves the forms of a Binder.
type API struct {
	binder   *binder.Binder
	log      *slog.Logger
	basePath string
}

func New(b *binder.Binder, opts ...Option) *API {
	a := &API{binder: b, log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("api"))
	return a
}

// Router returns the HTTP handler with middleware applied.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, a.logRequests)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/forms", func(r chi.Router) {
		r.Get("/", a.listForms())
		r.Route("/{form}", func(r chi.Router) {
			r.Get("/", a.showForm())
			r.Post("/validate", a.validateForm())
			r.Post("/fields/{field}/validate", a.validateField())
		})
	})

	r.NotFound(a.fail(handler.ErrNotFound))
	r.MethodNotAllowed(a.fail(handler.ErrMethodNotAllowed))
	return r
}

func (a *API) ready(context.Context) error {
	if len(a.binder.Forms()) == 0 {
		return ErrNoForms
	}
	return nil
}

func (a *API) fail(err error) http.HandlerFunc {
	onError := handler.NewErrorHandler()
	return func(w http.ResponseWriter, r *http.Request) {
		onError(handler.NewContext(w, r, a.log), err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// Flush keeps SSE responses streaming through the recorder.
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		a.log.LogAttrs(r.Context(), slog.LevelInfo, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			logger.Duration(time.Since(start)),
		)
	})
}
