package feed

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	prefs    *mocks.MockPreferencesRepository
	profiles *mocks.MockProfileRepository
	images   *mocks.MockImageRepository
	prompts  *mocks.MockPromptRepository
	uc       *FeedUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		prefs:    mocks.NewMockPreferencesRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		images:   mocks.NewMockImageRepository(ctrl),
		prompts:  mocks.NewMockPromptRepository(ctrl),
	}
	f.uc = NewFeedUseCase(f.prefs, f.profiles, f.images, f.prompts)
	f.uc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestGetFeedRequiresPreferences(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	f.prefs.EXPECT().Get(gomock.Any(), userID).Return(nil, domain.ErrPreferencesRequired)

	_, err := f.uc.GetFeed(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrPreferencesRequired)
}

func TestGetFeedAppliesPreferences(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	min, max := 25, 30
	prefs := &domain.Preferences{
		UserID:           userID,
		GenderPreference: []string{"Woman"},
		AgeRange:         &domain.AgeRange{Min: &min, Max: &max},
	}
	f.prefs.EXPECT().Get(gomock.Any(), userID).Return(prefs, nil)
	f.profiles.EXPECT().ListCandidates(gomock.Any(), userID, gomock.Any(), FeedSize).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter domain.FeedFilter, _ int) ([]*domain.Profile, error) {
			assert.Equal(t, []string{"Woman"}, filter.Genders)
			require.NotNil(t, filter.BornBefore)
			require.NotNil(t, filter.BornAfter)
			assert.Equal(t, time.Date(1999, 6, 15, 0, 0, 0, 0, time.UTC), *filter.BornBefore)
			assert.Equal(t, time.Date(1993, 6, 15, 0, 0, 0, 0, time.UTC), *filter.BornAfter)
			return nil, nil
		})

	res, err := f.uc.GetFeed(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, res.Profiles)
	assert.Empty(t, res.Profiles)
}

func TestGetFeedGroupsMedia(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ana, bea := uuid.New(), uuid.New()
	name := "Ana"

	f.prefs.EXPECT().Get(gomock.Any(), userID).Return(&domain.Preferences{UserID: userID}, nil)
	f.profiles.EXPECT().ListCandidates(gomock.Any(), userID, gomock.Any(), FeedSize).Return([]*domain.Profile{
		{UserID: ana, IsComplete: true, ProfileFields: domain.ProfileFields{Name: &name}},
		{UserID: bea, IsComplete: true},
	}, nil)
	f.images.EXPECT().ListByUsers(gomock.Any(), []uuid.UUID{ana, bea}).Return([]*domain.Image{
		{UserID: ana, DisplayOrder: 0},
		{UserID: ana, DisplayOrder: 1},
	}, nil)
	f.prompts.EXPECT().ListByUsers(gomock.Any(), []uuid.UUID{ana, bea}).Return([]*domain.Prompt{
		{UserID: bea, DisplayOrder: 0},
	}, nil)

	res, err := f.uc.GetFeed(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, res.Profiles, 2)

	assert.Equal(t, ana, res.Profiles[0].ID)
	assert.Len(t, res.Profiles[0].Images, 2)
	assert.NotNil(t, res.Profiles[0].Prompts)
	assert.Empty(t, res.Profiles[0].Prompts)
	assert.Equal(t, "Ana", *res.Profiles[0].Details.Name)

	assert.Equal(t, bea, res.Profiles[1].ID)
	assert.Empty(t, res.Profiles[1].Images)
	assert.Len(t, res.Profiles[1].Prompts, 1)
}
