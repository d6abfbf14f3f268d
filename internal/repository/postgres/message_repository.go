package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	base
}

func NewMessageRepository(db *sqlx.DB, timeout time.Duration) repository.MessageRepository {
	return &messageRepository{base{db: db, timeout: timeout}}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		INSERT INTO messages (match_id, sender_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, is_read
	`
	err := r.ext(ctx).QueryRowxContext(ctx, query, message.MatchID, message.SenderID, message.Text).
		Scan(&message.ID, &message.CreatedAt, &message.IsRead)
	return classify(err)
}

func (r *messageRepository) ListAfter(ctx context.Context, matchID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Message, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		SELECT id, match_id, sender_id, text, created_at, is_read
		FROM messages WHERE match_id = $1`
	args := []interface{}{matchID}
	argCount := 2

	if cursor != nil {
		query += fmt.Sprintf(" AND created_at > $%d", argCount)
		args = append(args, *cursor)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY created_at ASC, id ASC LIMIT $%d", argCount)
	args = append(args, limit)

	messages := []*domain.Message{}
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &messages, query, args...); err != nil {
		return nil, classify(err)
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID, readerID uuid.UUID) (int64, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		UPDATE messages SET is_read = true
		WHERE match_id = $1 AND sender_id <> $2 AND NOT is_read
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, matchID, readerID)
	if err != nil {
		return 0, classify(err)
	}
	return result.RowsAffected()
}
