package postgres

import (
	"context"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type promptRepository struct {
	base
}

func NewPromptRepository(db *sqlx.DB, timeout time.Duration) repository.PromptRepository {
	return &promptRepository{base{db: db, timeout: timeout}}
}

func (r *promptRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var count int
	err := sqlx.GetContext(ctx, r.ext(ctx), &count, `SELECT COUNT(*) FROM user_prompts WHERE user_id = $1`, userID)
	return count, classify(err)
}

func (r *promptRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Prompt, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	prompts := []*domain.Prompt{}
	query := `
		SELECT id, user_id, question, answer, display_order, created_at
		FROM user_prompts WHERE user_id = $1
		ORDER BY display_order
	`
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &prompts, query, userID); err != nil {
		return nil, classify(err)
	}
	return prompts, nil
}

func (r *promptRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Prompt, error) {
	prompts := []*domain.Prompt{}
	if len(userIDs) == 0 {
		return prompts, nil
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, question, answer, display_order, created_at
		FROM user_prompts WHERE user_id = ANY($1::uuid[])
		ORDER BY user_id, display_order
	`
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &prompts, query, pq.Array(uuidStrings(userIDs))); err != nil {
		return nil, classify(err)
	}
	return prompts, nil
}

func (r *promptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		INSERT INTO user_prompts (user_id, question, answer, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.ext(ctx).QueryRowxContext(ctx, query, prompt.UserID, prompt.Question, prompt.Answer, prompt.DisplayOrder).
		Scan(&prompt.ID, &prompt.CreatedAt)
	return classify(err)
}

func (r *promptRepository) Update(ctx context.Context, prompt *domain.Prompt) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		UPDATE user_prompts SET question = $1, answer = $2
		WHERE user_id = $3 AND display_order = $4
		RETURNING id, created_at
	`
	err := r.ext(ctx).QueryRowxContext(ctx, query, prompt.Question, prompt.Answer, prompt.UserID, prompt.DisplayOrder).
		Scan(&prompt.ID, &prompt.CreatedAt)
	if isNoRows(err) {
		return domain.ErrPromptNotFound
	}
	return classify(err)
}

func (r *promptRepository) DeleteByOrder(ctx context.Context, userID uuid.UUID, order int) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	result, err := r.ext(ctx).ExecContext(ctx,
		`DELETE FROM user_prompts WHERE user_id = $1 AND display_order = $2`, userID, order)
	if err != nil {
		return classify(err)
	}
	if err := expectAffected(result, domain.ErrPromptNotFound); err != nil {
		return err
	}

	compact := `
		UPDATE user_prompts SET display_order = display_order - 1
		WHERE user_id = $1 AND display_order > $2
	`
	_, err = r.ext(ctx).ExecContext(ctx, compact, userID, order)
	return classify(err)
}
