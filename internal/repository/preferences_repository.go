package repository

import (
	"context"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type PreferencesRepository interface {
	// Get returns domain.ErrPreferencesRequired when nothing is stored.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Upsert(ctx context.Context, prefs *domain.Preferences) error
}
