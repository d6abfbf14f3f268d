package interaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
)

// MatchResolver decides whether a recorded LIKE completes a match.
type MatchResolver interface {
	ResolveMutualLike(ctx context.Context, from, to uuid.UUID) (*domain.InteractionResult, error)
}

type InteractionUseCase struct {
	tx              repository.Transactor
	interactionRepo repository.InteractionRepository
	matches         MatchResolver
}

func NewInteractionUseCase(
	tx repository.Transactor,
	interactionRepo repository.InteractionRepository,
	matches MatchResolver,
) *InteractionUseCase {
	return &InteractionUseCase{
		tx:              tx,
		interactionRepo: interactionRepo,
		matches:         matches,
	}
}

// InteractRequest represents a LIKE or PASS on another user
type InteractRequest struct {
	TargetUserID uuid.UUID                  `json:"target_user_id" binding:"required"`
	Action       domain.Action              `json:"action" binding:"required"`
	Context      *domain.InteractionContext `json:"context"`
	Comment      *string                    `json:"comment"`
}

// Interact records the interaction and, for a LIKE, checks for a mutual like
// in the same transaction.
func (uc *InteractionUseCase) Interact(ctx context.Context, fromUserID uuid.UUID, req *InteractRequest) (*domain.InteractionResult, error) {
	interaction := &domain.Interaction{
		FromUserID: fromUserID,
		ToUserID:   req.TargetUserID,
		Action:     domain.Action(strings.ToUpper(string(req.Action))),
	}
	if req.Context != nil {
		contextType := domain.ContextType(strings.ToUpper(string(req.Context.Type)))
		contextID := req.Context.ID
		interaction.ContextType = &contextType
		interaction.ContextID = &contextID
	}
	if req.Comment != nil {
		if comment := strings.TrimSpace(*req.Comment); comment != "" {
			interaction.Comment = &comment
		}
	}

	if err := interaction.Validate(); err != nil {
		return nil, err
	}

	var result *domain.InteractionResult
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.interactionRepo.Upsert(ctx, interaction); err != nil {
			return err
		}

		if interaction.Action != domain.ActionLike {
			result = &domain.InteractionResult{Status: domain.StatusSent}
			return nil
		}

		var err error
		result, err = uc.matches.ResolveMutualLike(ctx, interaction.FromUserID, interaction.ToUserID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}
	return result, nil
}
