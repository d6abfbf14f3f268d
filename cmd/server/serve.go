package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/container"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependency injection container
	app, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logrus.WithError(err).Error("error closing application")
		}
	}()

	if err := app.Server.Run(ctx, shutdownTimeout); err != nil {
		return err
	}

	logrus.Info("server exited properly")
	return nil
}
