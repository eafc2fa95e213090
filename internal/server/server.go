// Package server owns the listening socket and the lifecycle of the HTTP
// responder: bind, serve, graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Server is an Echo instance bound to one address.
type Server struct {
	e               *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	ln              net.Listener
}

// New returns a server for e on addr.  Nothing is bound until Listen.
func New(e *echo.Echo, addr string, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &Server{e: e, addr: addr, shutdownTimeout: shutdownTimeout}
}

// Listen binds the address over IPv4 only.  Binding happens before serving
// so a port that is already taken is reported to the caller instead of from
// a goroutine.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp4", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	return nil
}

// Addr is the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.  It binds first if Listen was not called.
// A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.e.Listener = s.ln

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.e.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down (timeout %s)", s.shutdownTimeout)
	sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
