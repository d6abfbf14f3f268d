package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
)

// VerificationStore keeps pending phone verifications with a TTL.
type VerificationStore interface {
	Save(ctx context.Context, v *domain.PendingVerification, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.PendingVerification, error)
	IncrementAttempts(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}
