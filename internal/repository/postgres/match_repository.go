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

type matchRepository struct {
	base
}

func NewMatchRepository(db *sqlx.DB, timeout time.Duration) repository.MatchRepository {
	return &matchRepository{base{db: db, timeout: timeout}}
}

const matchColumns = `id, user1_id, user2_id, last_message, last_message_at, created_at`

func (r *matchRepository) CreateIfAbsent(ctx context.Context, a, b uuid.UUID) (*domain.Match, bool, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	// Ensure user1_id < user2_id for constraint
	user1ID, user2ID := domain.OrderedPair(a, b)

	var match domain.Match
	insert := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		ON CONFLICT (user1_id, user2_id) DO NOTHING
		RETURNING ` + matchColumns
	err := sqlx.GetContext(ctx, r.ext(ctx), &match, insert, user1ID, user2ID)
	if err == nil {
		return &match, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, classify(err)
	}

	// The pair already has a match; a separate statement sees rows committed
	// by a concurrent creator.
	query := `SELECT ` + matchColumns + ` FROM matches WHERE user1_id = $1 AND user2_id = $2`
	if err := sqlx.GetContext(ctx, r.ext(ctx), &match, query, user1ID, user2ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, domain.ErrMatchNotFound
		}
		return nil, false, classify(err)
	}
	return &match, false, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	return r.get(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
}

func (r *matchRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	return r.get(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1 FOR UPDATE`, id)
}

func (r *matchRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Match, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var match domain.Match
	err := sqlx.GetContext(ctx, r.ext(ctx), &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, classify(err)
	}
	return &match, nil
}

type matchSummaryRow struct {
	ID                uuid.UUID  `db:"id"`
	CreatedAt         time.Time  `db:"created_at"`
	OtherUserID       uuid.UUID  `db:"other_user_id"`
	OtherName         *string    `db:"other_name"`
	OtherPhotoURL     *string    `db:"other_photo_url"`
	LastMessage       *string    `db:"last_message"`
	LastMessageAt     *time.Time `db:"last_message_at"`
	LastMessageIsRead *bool      `db:"last_message_is_read"`
}

func (row *matchSummaryRow) toDomain() *domain.MatchSummary {
	summary := &domain.MatchSummary{
		ID: row.ID,
		WithUser: domain.MatchedUser{
			ID:       row.OtherUserID,
			Name:     row.OtherName,
			PhotoURL: row.OtherPhotoURL,
		},
		CreatedAt: row.CreatedAt,
	}
	if row.LastMessage != nil && row.LastMessageAt != nil {
		summary.LastMessage = &domain.MessagePreview{
			Text:      *row.LastMessage,
			CreatedAt: *row.LastMessageAt,
			IsRead:    row.LastMessageIsRead != nil && *row.LastMessageIsRead,
		}
	}
	return summary
}

// GetUserMatches lists the user's matches, most recent conversation first;
// matches without messages come last, newest first.
func (r *matchRepository) GetUserMatches(ctx context.Context, userID uuid.UUID) ([]*domain.MatchSummary, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		WITH mine AS (
			SELECT m.*,
			       CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END AS other_user_id
			FROM matches m
			WHERE m.user1_id = $1 OR m.user2_id = $1
		)
		SELECT mine.id, mine.created_at, mine.other_user_id,
		       p.name AS other_name,
		       img.url AS other_photo_url,
		       mine.last_message, mine.last_message_at,
		       lm.is_read AS last_message_is_read
		FROM mine
		LEFT JOIN profiles p ON p.user_id = mine.other_user_id
		LEFT JOIN LATERAL (
			SELECT url FROM user_images
			WHERE user_id = mine.other_user_id
			ORDER BY display_order LIMIT 1
		) img ON true
		LEFT JOIN LATERAL (
			SELECT is_read FROM messages
			WHERE match_id = mine.id
			ORDER BY created_at DESC, id DESC LIMIT 1
		) lm ON true
		ORDER BY mine.last_message_at DESC NULLS LAST, mine.created_at DESC
	`
	var rows []matchSummaryRow
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &rows, query, userID); err != nil {
		return nil, classify(err)
	}

	summaries := make([]*domain.MatchSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, rows[i].toDomain())
	}
	return summaries, nil
}

func (r *matchRepository) UpdateLastMessage(ctx context.Context, id uuid.UUID, text string, at time.Time) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `UPDATE matches SET last_message = $1, last_message_at = $2 WHERE id = $3`
	result, err := r.ext(ctx).ExecContext(ctx, query, text, at, id)
	if err != nil {
		return classify(err)
	}
	return expectAffected(result, domain.ErrMatchNotFound)
}
