package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository/mocks"
	"github.com/gdugdh24/pairly-backend/internal/usecase/feed"
	"github.com/gdugdh24/pairly-backend/internal/usecase/interaction"
	"github.com/gdugdh24/pairly-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type feedFixture struct {
	prefs        *mocks.MockPreferencesRepository
	interactions *mocks.MockInteractionRepository
	router       *gin.Engine
}

func newFeedFixture(t *testing.T, userID uuid.UUID) *feedFixture {
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	f := &feedFixture{
		prefs:        mocks.NewMockPreferencesRepository(ctrl),
		interactions: mocks.NewMockInteractionRepository(ctrl),
	}
	feedUC := feed.NewFeedUseCase(f.prefs, mocks.NewMockProfileRepository(ctrl), mocks.NewMockImageRepository(ctrl), mocks.NewMockPromptRepository(ctrl))
	matchUC := match.NewMatchUseCase(tx, mocks.NewMockMatchRepository(ctrl), mocks.NewMockMessageRepository(ctrl), f.interactions)
	h := NewFeedHandler(feedUC, interaction.NewInteractionUseCase(tx, f.interactions, matchUC))

	f.router = gin.New()
	f.router.GET("/feed", asUser(userID), h.GetFeed)
	f.router.POST("/interact", asUser(userID), h.Interact)
	return f
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetFeedWithoutPreferences(t *testing.T) {
	userID := uuid.New()
	f := newFeedFixture(t, userID)
	f.prefs.EXPECT().Get(gomock.Any(), userID).Return(nil, domain.ErrPreferencesRequired)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "set your preferences before requesting the feed", decodeError(t, w))
}

func TestInteractHandler(t *testing.T) {
	userID, target := uuid.New(), uuid.New()

	t.Run("pass is sent", func(t *testing.T) {
		f := newFeedFixture(t, userID)
		f.interactions.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		w := postJSON(f.router, "/interact", `{"target_user_id":"`+target.String()+`","action":"PASS"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"SENT"}`, w.Body.String())
	})

	t.Run("missing target", func(t *testing.T) {
		f := newFeedFixture(t, userID)

		w := postJSON(f.router, "/interact", `{"action":"LIKE"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self interaction", func(t *testing.T) {
		f := newFeedFixture(t, userID)

		w := postJSON(f.router, "/interact", `{"target_user_id":"`+userID.String()+`","action":"LIKE"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid input: cannot interact with yourself", decodeError(t, w))
	})

	t.Run("comment too long", func(t *testing.T) {
		f := newFeedFixture(t, userID)
		comment := strings.Repeat("a", domain.MaxCommentLength+1)

		w := postJSON(f.router, "/interact", `{"target_user_id":"`+target.String()+`","action":"LIKE","comment":"`+comment+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid input: comment must be at most 500 characters", decodeError(t, w))
	})

	t.Run("unknown target", func(t *testing.T) {
		f := newFeedFixture(t, userID)
		f.interactions.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.ErrInvalidReference)

		w := postJSON(f.router, "/interact", `{"target_user_id":"`+target.String()+`","action":"LIKE"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
