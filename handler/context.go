package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Context is the request context handed to a HandlerFunc.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Logger() *slog.Logger
}

// NewContext creates a Context. A nil logger discards records.
func NewContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) Context {
	if log == nil {
		log = logger.Nop()
	}
	return &httpContext{w: w, r: r, log: log}
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	log *slog.Logger
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Logger() *slog.Logger                { return c.log }

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }
