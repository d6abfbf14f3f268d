package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
)

// FeedSize is the maximum number of candidates returned per request
const FeedSize = 20

type FeedUseCase struct {
	prefsRepo   repository.PreferencesRepository
	profileRepo repository.ProfileRepository
	imageRepo   repository.ImageRepository
	promptRepo  repository.PromptRepository
	now         func() time.Time
}

func NewFeedUseCase(
	prefsRepo repository.PreferencesRepository,
	profileRepo repository.ProfileRepository,
	imageRepo repository.ImageRepository,
	promptRepo repository.PromptRepository,
) *FeedUseCase {
	return &FeedUseCase{
		prefsRepo:   prefsRepo,
		profileRepo: profileRepo,
		imageRepo:   imageRepo,
		promptRepo:  promptRepo,
		now:         time.Now,
	}
}

// FeedResponse wraps the candidate profiles
type FeedResponse struct {
	Profiles []*domain.FullProfile `json:"profiles"`
}

// GetFeed returns candidates that match the user's preferences and that the
// user has neither liked nor passed yet.
func (uc *FeedUseCase) GetFeed(ctx context.Context, userID uuid.UUID) (*FeedResponse, error) {
	prefs, err := uc.prefsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.profileRepo.ListCandidates(ctx, userID, prefs.Filter(uc.now()), FeedSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	response := &FeedResponse{Profiles: make([]*domain.FullProfile, 0, len(candidates))}
	if len(candidates) == 0 {
		return response, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.UserID
	}

	images, err := uc.imageRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate images: %w", err)
	}
	prompts, err := uc.promptRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate prompts: %w", err)
	}

	imagesByUser := make(map[uuid.UUID][]*domain.Image, len(candidates))
	for _, image := range images {
		imagesByUser[image.UserID] = append(imagesByUser[image.UserID], image)
	}
	promptsByUser := make(map[uuid.UUID][]*domain.Prompt, len(candidates))
	for _, prompt := range prompts {
		promptsByUser[prompt.UserID] = append(promptsByUser[prompt.UserID], prompt)
	}

	for _, c := range candidates {
		full := &domain.FullProfile{
			ID:         c.UserID,
			IsComplete: c.IsComplete,
			Images:     imagesByUser[c.UserID],
			Prompts:    promptsByUser[c.UserID],
			Details:    &c.ProfileFields,
		}
		if full.Images == nil {
			full.Images = []*domain.Image{}
		}
		if full.Prompts == nil {
			full.Prompts = []*domain.Prompt{}
		}
		response.Profiles = append(response.Profiles, full)
	}

	return response, nil
}
