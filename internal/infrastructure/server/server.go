package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// Server wraps the API's http.Server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new HTTP server for handler
func NewServer(cfg *config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       time.Minute,
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
	}
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled or the listener fails. On cancellation
// in-flight requests get up to drainTimeout to finish.
func (s *Server) Run(ctx context.Context, drainTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("addr", s.httpServer.Addr).Info("starting server")
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenErr <- err
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("shutting down server")
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-listenErr; err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	logrus.Info("server stopped")
	return nil
}
