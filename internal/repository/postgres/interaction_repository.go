package postgres

import (
	"context"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type interactionRepository struct {
	base
}

func NewInteractionRepository(db *sqlx.DB, timeout time.Duration) repository.InteractionRepository {
	return &interactionRepository{base{db: db, timeout: timeout}}
}

// Upsert records the interaction, replacing any earlier one for the same
// ordered pair. Unknown user ids surface as domain.ErrInvalidReference.
func (r *interactionRepository) Upsert(ctx context.Context, i *domain.Interaction) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		INSERT INTO interactions (from_user_id, to_user_id, action, context_type, context_id, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (from_user_id, to_user_id) DO UPDATE SET
			action = EXCLUDED.action,
			context_type = EXCLUDED.context_type,
			context_id = EXCLUDED.context_id,
			comment = EXCLUDED.comment,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	err := r.ext(ctx).QueryRowxContext(
		ctx, query,
		i.FromUserID, i.ToUserID, i.Action, i.ContextType, i.ContextID, i.Comment,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	return classify(err)
}

func (r *interactionRepository) Exists(ctx context.Context, fromUserID, toUserID uuid.UUID, action domain.Action) (bool, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM interactions
			WHERE from_user_id = $1 AND to_user_id = $2 AND action = $3
		)
	`
	err := sqlx.GetContext(ctx, r.ext(ctx), &exists, query, fromUserID, toUserID, action)
	return exists, classify(err)
}

// LockPair takes a transaction-scoped advisory lock on the unordered pair.
// Outside a transaction the lock is released immediately and has no effect.
func (r *interactionRepository) LockPair(ctx context.Context, a, b uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	_, err := r.ext(ctx).ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, domain.PairKey(a, b))
	return classify(err)
}
