package logger

import (
	"os"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger from config.
func Setup(cfg *config.LoggingConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)

	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
