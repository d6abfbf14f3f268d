package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, timeout time.Duration) repository.UserRepository {
	return &userRepository{base{db: db, timeout: timeout}}
}

func (r *userRepository) GetOrCreateByPhone(ctx context.Context, phone string) (*domain.User, bool, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	// xmax = 0 only for freshly inserted rows
	query := `
		INSERT INTO users (phone)
		VALUES ($1)
		ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING id, phone, email, created_at, (xmax = 0) AS inserted
	`
	var row struct {
		domain.User
		Inserted bool `db:"inserted"`
	}
	if err := sqlx.GetContext(ctx, r.ext(ctx), &row, query, phone); err != nil {
		return nil, false, classify(err)
	}
	user := row.User
	return &user, row.Inserted, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var user domain.User
	query := `SELECT id, phone, email, created_at FROM users WHERE id = $1`
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(err)
	}
	return &user, nil
}

func (r *userRepository) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, r.ext(ctx), &locked, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return classify(err)
	}
	return nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	result, err := r.ext(ctx).ExecContext(ctx, `UPDATE users SET email = $2 WHERE id = $1`, id, email)
	if err != nil {
		return classify(err)
	}
	return expectAffected(result, domain.ErrUserNotFound)
}

// Delete removes the user; every owned row goes with it through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	result, err := r.ext(ctx).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectAffected(result, domain.ErrUserNotFound)
}

func expectAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
