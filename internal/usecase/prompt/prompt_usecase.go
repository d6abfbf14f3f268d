package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/gdugdh24/pairly-backend/internal/usecase/profile"
	"github.com/google/uuid"
)

const (
	maxQuestionLength = 200
	maxAnswerLength   = 500
)

type PromptUseCase struct {
	tx          repository.Transactor
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	promptRepo  repository.PromptRepository
}

func NewPromptUseCase(
	tx repository.Transactor,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	promptRepo repository.PromptRepository,
) *PromptUseCase {
	return &PromptUseCase{
		tx:          tx,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		promptRepo:  promptRepo,
	}
}

// PromptRequest is the body of prompt create and update
type PromptRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (r *PromptRequest) normalize() error {
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
	if r.Question == "" || r.Answer == "" {
		return fmt.Errorf("%w: question and answer are required", domain.ErrInvalidInput)
	}
	if len([]rune(r.Question)) > maxQuestionLength {
		return fmt.Errorf("%w: question longer than %d characters", domain.ErrInvalidInput, maxQuestionLength)
	}
	if len([]rune(r.Answer)) > maxAnswerLength {
		return fmt.Errorf("%w: answer longer than %d characters", domain.ErrInvalidInput, maxAnswerLength)
	}
	return nil
}

func (uc *PromptUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.Prompt, error) {
	return uc.promptRepo.ListByUser(ctx, userID)
}

// Create appends a prompt in the next free slot
func (uc *PromptUseCase) Create(ctx context.Context, userID uuid.UUID, req *PromptRequest) (*domain.Prompt, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	prompt := &domain.Prompt{UserID: userID, Question: req.Question, Answer: req.Answer}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.LockForUpdate(ctx, userID); err != nil {
			return err
		}
		count, err := uc.promptRepo.Count(ctx, userID)
		if err != nil {
			return err
		}
		if count >= domain.MaxPrompts {
			return domain.ErrTooManyPrompts
		}
		prompt.DisplayOrder = count
		return uc.promptRepo.Create(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

// Update replaces question and answer of the prompt at order
func (uc *PromptUseCase) Update(ctx context.Context, userID uuid.UUID, order int, req *PromptRequest) (*domain.Prompt, error) {
	if !domain.ValidPromptOrder(order) {
		return nil, domain.ErrInvalidOrder
	}
	if err := req.normalize(); err != nil {
		return nil, err
	}

	prompt := &domain.Prompt{
		UserID:       userID,
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: order,
	}
	if err := uc.promptRepo.Update(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// Delete removes the prompt at order and closes the gap
func (uc *PromptUseCase) Delete(ctx context.Context, userID uuid.UUID, order int) error {
	if !domain.ValidPromptOrder(order) {
		return domain.ErrInvalidOrder
	}

	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.LockForUpdate(ctx, userID); err != nil {
			return err
		}
		if err := uc.promptRepo.DeleteByOrder(ctx, userID, order); err != nil {
			return err
		}
		return profile.ClearCompletion(ctx, uc.profileRepo, userID)
	})
}
