package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match for the unordered pair unless it exists.
	// It returns the stored match and whether this call created it.
	CreateIfAbsent(ctx context.Context, a, b uuid.UUID) (*domain.Match, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID uuid.UUID) ([]*domain.MatchSummary, error)
	UpdateLastMessage(ctx context.Context, id uuid.UUID, text string, at time.Time) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// ListAfter returns messages created strictly after cursor, oldest first.
	ListAfter(ctx context.Context, matchID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, matchID, readerID uuid.UUID) (int64, error)
}
