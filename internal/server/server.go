// Package server exposes the task service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"

	"tasks-api/internal/config"
	"tasks-api/internal/services"
)

// Server serves the task routes for one TaskService.
type Server struct {
	service services.TaskService
	logger  *log.Logger
	config  *config.Config
	handler http.Handler
}

// New creates a server. A nil cfg uses the defaults.
func New(service services.TaskService, logger *log.Logger, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Server{
		service: service,
		logger:  logger,
		config:  cfg,
	}
	s.handler = s.withRequestLogging(s.routes())
	return s
}

// Handler returns the root handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe binds the configured address and serves until ctx is
// cancelled, then shuts down within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Address(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	port := s.config.Server.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.logger.Info(fmt.Sprintf("Listening on port %d...", port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.config.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
