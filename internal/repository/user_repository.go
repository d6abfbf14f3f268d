package repository

import (
	"context"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// GetOrCreateByPhone returns the user and whether it was just created.
	GetOrCreateByPhone(ctx context.Context, phone string) (*domain.User, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// LockForUpdate takes a row lock on the user for the rest of the transaction.
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
