package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// allowedImageTypes maps accepted upload content types to object key extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type ProfileUseCase struct {
	tx          repository.Transactor
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	imageRepo   repository.ImageRepository
	promptRepo  repository.PromptRepository
	prefsRepo   repository.PreferencesRepository
	storage     repository.ObjectStorage
	maxFileSize int64
}

func NewProfileUseCase(
	tx repository.Transactor,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	imageRepo repository.ImageRepository,
	promptRepo repository.PromptRepository,
	prefsRepo repository.PreferencesRepository,
	storage repository.ObjectStorage,
	maxFileSize int64,
) *ProfileUseCase {
	return &ProfileUseCase{
		tx:          tx,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		imageRepo:   imageRepo,
		promptRepo:  promptRepo,
		prefsRepo:   prefsRepo,
		storage:     storage,
		maxFileSize: maxFileSize,
	}
}

// FinalizeResponse reports whether the profile went live and what is still missing
type FinalizeResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	PendingActions []string `json:"pending_actions,omitempty"`
}

const (
	FinalizeStatusComplete   = "success"
	FinalizeStatusIncomplete = "incomplete"
)

// GetMyProfile returns current user's profile with images and prompts
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*domain.FullProfile, error) {
	full := &domain.FullProfile{ID: userID}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		full.IsComplete = profile.IsComplete
		full.Details = &profile.ProfileFields
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if full.Images, err = uc.imageRepo.ListByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if full.Prompts, err = uc.promptRepo.ListByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return full, nil
}

// UpsertProfile creates the profile or updates the provided fields.
// Nil fields keep their stored value.
func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, userID uuid.UUID, fields *domain.ProfileFields) (*domain.Profile, error) {
	profile, err := uc.profileRepo.Upsert(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// UploadImage stores the file and appends it to the user's image slots.
// The object is uploaded before the slot transaction so a retried
// transaction never uploads twice; it is removed again if the slot insert fails.
func (uc *ProfileUseCase) UploadImage(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (*domain.Image, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", domain.ErrInvalidInput, contentType)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if uc.maxFileSize > 0 && size > uc.maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, uc.maxFileSize)
	}

	count, err := uc.imageRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}
	if count >= domain.MaxImages {
		return nil, domain.ErrTooManyImages
	}

	key := fmt.Sprintf("users/%s/%s%s", userID, uuid.NewString(), ext)
	url, err := uc.storage.Put(ctx, key, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	image := &domain.Image{UserID: userID, URL: url, ObjectKey: key}
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.LockForUpdate(ctx, userID); err != nil {
			return err
		}
		count, err := uc.imageRepo.Count(ctx, userID)
		if err != nil {
			return err
		}
		if count >= domain.MaxImages {
			return domain.ErrTooManyImages
		}
		image.DisplayOrder = count
		return uc.imageRepo.Create(ctx, image)
	})
	if err != nil {
		uc.removeObject(ctx, key)
		return nil, err
	}

	return image, nil
}

// DeleteImage removes the image at order and closes the gap
func (uc *ProfileUseCase) DeleteImage(ctx context.Context, userID uuid.UUID, order int) error {
	if !domain.ValidImageOrder(order) {
		return domain.ErrInvalidOrder
	}

	var removed *domain.Image
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.LockForUpdate(ctx, userID); err != nil {
			return err
		}
		var err error
		if removed, err = uc.imageRepo.DeleteByOrder(ctx, userID, order); err != nil {
			return err
		}
		return ClearCompletion(ctx, uc.profileRepo, userID)
	})
	if err != nil {
		return err
	}

	uc.removeObject(ctx, removed.ObjectKey)
	return nil
}

// Finalize checks that the profile has every image, prompt and attribute and
// marks it complete. Otherwise it lists what is still missing.
func (uc *ProfileUseCase) Finalize(ctx context.Context, userID uuid.UUID) (*FinalizeResponse, error) {
	var response *FinalizeResponse
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.LockForUpdate(ctx, userID); err != nil {
			return err
		}

		images, err := uc.imageRepo.Count(ctx, userID)
		if err != nil {
			return err
		}
		prompts, err := uc.promptRepo.Count(ctx, userID)
		if err != nil {
			return err
		}

		missing := domain.AllFieldsMissing()
		profile, err := uc.profileRepo.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			missing = profile.MissingFields()
		case !errors.Is(err, domain.ErrProfileNotFound):
			return err
		}

		pending := PendingActions(images, prompts, missing)
		if len(pending) > 0 {
			response = &FinalizeResponse{
				Status:         FinalizeStatusIncomplete,
				Message:        "Profile is not complete yet",
				PendingActions: pending,
			}
			return nil
		}

		if err := uc.profileRepo.UpdateCompletionStatus(ctx, userID, true); err != nil {
			return err
		}
		response = &FinalizeResponse{
			Status:  FinalizeStatusComplete,
			Message: "Profile is live",
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize profile: %w", err)
	}

	return response, nil
}

// PendingActions lists human-readable remediation steps for an incomplete profile
func PendingActions(images, prompts int, missingFields []string) []string {
	var actions []string
	if n := domain.MaxImages - images; n > 0 {
		actions = append(actions, fmt.Sprintf("Upload %d more %s", n, plural(n, "photo", "photos")))
	}
	if n := domain.MaxPrompts - prompts; n > 0 {
		actions = append(actions, fmt.Sprintf("Add %d more %s", n, plural(n, "prompt", "prompts")))
	}
	if len(missingFields) > 0 {
		actions = append(actions, "Fill in missing profile fields: "+strings.Join(missingFields, ", "))
	}
	return actions
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// DeleteAccount removes the user and everything owned by them.
// Stored images are removed after the rows are gone.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	images, err := uc.imageRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	for _, image := range images {
		uc.removeObject(ctx, image.ObjectKey)
	}

	logrus.WithField("user_id", userID).Info("account deleted")
	return nil
}

// GetPreferences returns the stored preferences or domain.ErrPreferencesRequired
func (uc *ProfileUseCase) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	return uc.prefsRepo.Get(ctx, userID)
}

// SetPreferences replaces the user's preferences
func (uc *ProfileUseCase) SetPreferences(ctx context.Context, userID uuid.UUID, prefs *domain.Preferences) (*domain.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	prefs.UserID = userID
	if err := uc.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

// UpdateEmail sets the contact email of the user
func (uc *ProfileUseCase) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	return uc.userRepo.UpdateEmail(ctx, userID, email)
}

func (uc *ProfileUseCase) removeObject(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := uc.storage.Remove(context.WithoutCancel(ctx), key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to remove stored image")
	}
}

// ClearCompletion drops the completion flag after media was removed.
// A user without a profile row has nothing to clear.
func ClearCompletion(ctx context.Context, profiles repository.ProfileRepository, userID uuid.UUID) error {
	err := profiles.UpdateCompletionStatus(ctx, userID, false)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil
	}
	return err
}
