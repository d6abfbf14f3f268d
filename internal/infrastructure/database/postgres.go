package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const connectTimeout = 5 * time.Second

// NewPostgresDB opens the pool and waits for the first successful ping
func NewPostgresDB(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s@%s:%d: %w", cfg.DBName, cfg.Host, cfg.Port, err)
	}

	logrus.WithFields(logrus.Fields{
		"host":      cfg.Host,
		"database":  cfg.DBName,
		"max_conns": cfg.MaxOpenConns,
	}).Info("connected to postgres")

	return db, nil
}
