package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type txKey struct{}

// base is embedded by every repository. It resolves the active transaction
// from the context and bounds each statement with a timeout.
type base struct {
	db      *sqlx.DB
	timeout time.Duration
}

func (b base) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return b.db
}

func (b base) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

const maxTxAttempts = 3

type Transactor struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewTransactor(db *sqlx.DB, timeout time.Duration) *Transactor {
	return &Transactor{db: db, timeout: timeout}
}

// WithinTx runs fn in a transaction. A context that already carries a
// transaction is reused, so nested calls join the outer one. Serialization
// failures and deadlocks are retried.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = t.run(ctx, fn)
		if !isRetryableTx(err) {
			return err
		}
		logrus.WithError(err).WithField("attempt", attempt).Warn("transaction aborted, retrying")
	}
	return err
}

func (t *Transactor) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func isRetryableTx(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// classify maps driver errors onto domain categories. The original error stays
// in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505":
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	case "23503":
		return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	case "23514", "22P02", "22007", "22008":
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	case "40001", "40P01", "57P01", "53300":
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	if pqErr.Code.Class() == "08" {
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
