package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Generator produces new request ids.
type Generator func() string

// Option configures the middleware returned by New.
type Option func(*options)

type options struct {
	generate Generator
	trust    bool
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		if g != nil {
			o.generate = g
		}
	}
}

// WithoutClientID ignores ids sent by clients and always generates one.
func WithoutClientID() Option {
	return func(o *options) {
		o.trust = false
	}
}

// New builds a request id middleware.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{generate: uuid.NewString, trust: true}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if !o.trust || !isValid(id) {
				id = o.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func isValid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
