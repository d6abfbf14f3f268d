package repository

import (
	"context"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
)

type ImageRepository interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Image, error)
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Image, error)
	Create(ctx context.Context, image *domain.Image) error
	// DeleteByOrder removes the image and shifts later images down by one.
	DeleteByOrder(ctx context.Context, userID uuid.UUID, order int) (*domain.Image, error)
}

type PromptRepository interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Prompt, error)
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Prompt, error)
	Create(ctx context.Context, prompt *domain.Prompt) error
	Update(ctx context.Context, prompt *domain.Prompt) error
	// DeleteByOrder removes the prompt and shifts later prompts down by one.
	DeleteByOrder(ctx context.Context, userID uuid.UUID, order int) error
}
