package main

import (
	"fmt"
	"os"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

// rootCmd runs the API server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:           "pairly",
	Short:         "Dating app backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures logrus from the loaded configuration
func setupLogging(cfg *config.Config) error {
	if err := logger.Setup(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	return nil
}
