package repository

import (
	"context"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type InteractionRepository interface {
	Upsert(ctx context.Context, interaction *domain.Interaction) error
	Exists(ctx context.Context, fromUserID, toUserID uuid.UUID, action domain.Action) (bool, error)
	// LockPair serializes concurrent transactions touching the same unordered pair.
	LockPair(ctx context.Context, a, b uuid.UUID) error
}
