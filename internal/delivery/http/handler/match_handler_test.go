package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository/mocks"
	"github.com/gdugdh24/pairly-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// asUser stands in for the auth middleware
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type matchFixture struct {
	matches  *mocks.MockMatchRepository
	messages *mocks.MockMessageRepository
	router   *gin.Engine
}

func newMatchFixture(t *testing.T, userID uuid.UUID) *matchFixture {
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	f := &matchFixture{
		matches:  mocks.NewMockMatchRepository(ctrl),
		messages: mocks.NewMockMessageRepository(ctrl),
	}
	h := NewMatchHandler(match.NewMatchUseCase(tx, f.matches, f.messages, mocks.NewMockInteractionRepository(ctrl)))

	f.router = gin.New()
	group := f.router.Group("/matches", asUser(userID))
	group.GET("/:id/messages", h.GetMessages)
	group.POST("/:id/messages", h.SendMessage)
	group.POST("/:id/read", h.MarkRead)
	return f
}

func TestGetMessagesHandler(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	u1, u2 := domain.OrderedPair(alice, bob)
	m := &domain.Match{ID: uuid.New(), User1ID: u1, User2ID: u2}

	t.Run("participant gets page", func(t *testing.T) {
		f := newMatchFixture(t, alice)
		f.matches.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
		f.messages.EXPECT().ListAfter(gomock.Any(), m.ID, gomock.Any(), 10).Return([]*domain.Message{
			{ID: uuid.New(), MatchID: m.ID, SenderID: bob, Text: "hey", CreatedAt: time.Now()},
		}, nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/"+m.ID.String()+"/messages?limit=10", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var page domain.MessagePage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page.Messages, 1)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		f := newMatchFixture(t, uuid.New())
		f.matches.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/"+m.ID.String()+"/messages", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad match id", func(t *testing.T) {
		f := newMatchFixture(t, alice)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/nope/messages", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid id", decodeError(t, w))
	})

	t.Run("bad limit", func(t *testing.T) {
		f := newMatchFixture(t, alice)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/"+m.ID.String()+"/messages?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad cursor", func(t *testing.T) {
		f := newMatchFixture(t, alice)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/"+m.ID.String()+"/messages?cursor=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSendMessageHandler(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	u1, u2 := domain.OrderedPair(alice, bob)
	m := &domain.Match{ID: uuid.New(), User1ID: u1, User2ID: u2}

	t.Run("created", func(t *testing.T) {
		f := newMatchFixture(t, alice)
		f.matches.EXPECT().GetByIDForUpdate(gomock.Any(), m.ID).Return(m, nil)
		f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *domain.Message) error {
				msg.ID = uuid.New()
				msg.CreatedAt = time.Now()
				return nil
			})
		f.matches.EXPECT().UpdateLastMessage(gomock.Any(), m.ID, "hi", gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/matches/"+m.ID.String()+"/messages", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var msg domain.Message
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
		assert.Equal(t, "hi", msg.Text)
		assert.Equal(t, alice, msg.SenderID)
	})

	t.Run("missing text", func(t *testing.T) {
		f := newMatchFixture(t, alice)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/matches/"+m.ID.String()+"/messages", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown match", func(t *testing.T) {
		f := newMatchFixture(t, alice)
		f.matches.EXPECT().GetByIDForUpdate(gomock.Any(), m.ID).Return(nil, domain.ErrMatchNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/matches/"+m.ID.String()+"/messages", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMarkReadHandler(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	u1, u2 := domain.OrderedPair(alice, bob)
	m := &domain.Match{ID: uuid.New(), User1ID: u1, User2ID: u2}

	f := newMatchFixture(t, bob)
	f.matches.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
	f.messages.EXPECT().MarkRead(gomock.Any(), m.ID, bob).Return(int64(2), nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches/"+m.ID.String()+"/read", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":2}`, w.Body.String())
}
