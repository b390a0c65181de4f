package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Server serves one handler until its context is cancelled.
type Server struct {
	cfg   Config
	log   *slog.Logger
	ready chan struct{}

	mu   sync.Mutex
	srv  *http.Server
	addr net.Addr
}

// New returns a Server for cfg. A nil logger discards lifecycle events.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		cfg:   cfg.withDefaults(),
		log:   log.With(logger.Component("httpserver")),
		ready: make(chan struct{}),
	}
}

// Ready is closed once the listener is open.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is the address the server listens on, or nil before Ready.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run listens on the configured address and serves h until ctx is done.
// Cancelling ctx drains in-flight requests within the shutdown timeout.
// A Server runs once.
func (s *Server) Run(ctx context.Context, h http.Handler) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.srv = &http.Server{
		Handler:      h,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.mu.Unlock()
		s.log.Error("listen failed", slog.String("addr", s.cfg.Addr), logger.Error(err))
		return fmt.Errorf("%w %s: %w", ErrListen, s.cfg.Addr, err)
	}
	s.addr = ln.Addr()
	srv := s.srv
	s.mu.Unlock()

	s.log.Info("serving", slog.String("addr", ln.Addr().String()))
	close(s.ready)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.log.Error("serve failed", logger.Error(err))
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		s.log.Warn("forced close after shutdown timeout", logger.Error(err))
		return errors.Join(ErrShutdown, err)
	}
	<-served
	s.log.Info("stopped")
	return nil
}
