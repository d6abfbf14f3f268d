package main

import (
	"context"
	"fmt"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/database"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var downSteps int

// migrateCmd groups schema migration commands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), database.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps <= 0 {
			return fmt.Errorf("--steps must be positive")
		}
		return withDatabase(cmd.Context(), func(db *sqlx.DB) error {
			return database.MigrateDown(db, downSteps)
		})
	},
}

// withDatabase opens the database from configuration and runs fn against it.
// Only the database part of the configuration has to be valid.
func withDatabase(ctx context.Context, fn func(db *sqlx.DB) error) error {
	cfg := config.LoadUnvalidated()
	if err := cfg.Database.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}
