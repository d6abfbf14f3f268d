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
	"github.com/lib/pq"
)

type imageRepository struct {
	base
}

func NewImageRepository(db *sqlx.DB, timeout time.Duration) repository.ImageRepository {
	return &imageRepository{base{db: db, timeout: timeout}}
}

func (r *imageRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var count int
	err := sqlx.GetContext(ctx, r.ext(ctx), &count, `SELECT COUNT(*) FROM user_images WHERE user_id = $1`, userID)
	return count, classify(err)
}

func (r *imageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Image, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	images := []*domain.Image{}
	query := `
		SELECT id, user_id, url, object_key, display_order, created_at
		FROM user_images WHERE user_id = $1
		ORDER BY display_order
	`
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &images, query, userID); err != nil {
		return nil, classify(err)
	}
	return images, nil
}

func (r *imageRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Image, error) {
	images := []*domain.Image{}
	if len(userIDs) == 0 {
		return images, nil
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, url, object_key, display_order, created_at
		FROM user_images WHERE user_id = ANY($1::uuid[])
		ORDER BY user_id, display_order
	`
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &images, query, pq.Array(uuidStrings(userIDs))); err != nil {
		return nil, classify(err)
	}
	return images, nil
}

func (r *imageRepository) Create(ctx context.Context, image *domain.Image) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		INSERT INTO user_images (user_id, url, object_key, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.ext(ctx).QueryRowxContext(ctx, query, image.UserID, image.URL, image.ObjectKey, image.DisplayOrder).
		Scan(&image.ID, &image.CreatedAt)
	return classify(err)
}

func (r *imageRepository) DeleteByOrder(ctx context.Context, userID uuid.UUID, order int) (*domain.Image, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var image domain.Image
	query := `
		DELETE FROM user_images
		WHERE user_id = $1 AND display_order = $2
		RETURNING id, user_id, url, object_key, display_order, created_at
	`
	if err := sqlx.GetContext(ctx, r.ext(ctx), &image, query, userID, order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, classify(err)
	}

	// display_order uniqueness is deferred to commit, so the shift is safe
	compact := `
		UPDATE user_images SET display_order = display_order - 1
		WHERE user_id = $1 AND display_order > $2
	`
	if _, err := r.ext(ctx).ExecContext(ctx, compact, userID, order); err != nil {
		return nil, classify(err)
	}
	return &image, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
