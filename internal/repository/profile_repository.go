package repository

import (
	"context"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, fields *domain.ProfileFields) (*domain.Profile, error)
	UpdateCompletionStatus(ctx context.Context, userID uuid.UUID, isComplete bool) error
	// ListCandidates returns other users' profiles matching filter that userID
	// has not interacted with yet.
	ListCandidates(ctx context.Context, userID uuid.UUID, filter domain.FeedFilter, limit int) ([]*domain.Profile, error)
}
