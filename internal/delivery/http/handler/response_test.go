package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unauthorized",
			err:        domain.ErrInvalidCode,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "unauthorized: invalid verification code",
		},
		{
			name:       "capacity",
			err:        domain.ErrTooManyImages,
			wantStatus: http.StatusBadRequest,
			wantBody:   "capacity exceeded: maximum 6 images allowed",
		},
		{
			name:       "wrapped invalid input",
			err:        fmt.Errorf("failed to record interaction: %w", domain.ErrCannotInteractSelf),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid input: cannot interact with yourself",
		},
		{
			name:       "preferences required",
			err:        domain.ErrPreferencesRequired,
			wantStatus: http.StatusBadRequest,
			wantBody:   "set your preferences before requesting the feed",
		},
		{
			name:       "forbidden",
			err:        domain.ErrNotMatchParticipant,
			wantStatus: http.StatusForbidden,
			wantBody:   "forbidden: not a participant of this match",
		},
		{
			name:       "not found",
			err:        domain.ErrMatchNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "not found: match not found",
		},
		{
			name:       "invalid reference hides driver detail",
			err:        fmt.Errorf("%w: %w", domain.ErrInvalidReference, &pq.Error{Code: "23503", Message: "violates foreign key"}),
			wantStatus: http.StatusNotFound,
			wantBody:   "referenced user not found",
		},
		{
			name:       "driver detail collapses to category",
			err:        fmt.Errorf("%w: %w", domain.ErrInvalidInput, &pq.Error{Code: "23514", Message: "check constraint"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid input",
		},
		{
			name:       "conflict",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantBody:   "conflicting update, please retry",
		},
		{
			name:       "internal",
			err:        errors.New("connection string leaked"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, w))
		})
	}
}

func TestRespondErrorTransientSetsRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/interact", nil)

	respondError(c, fmt.Errorf("failed to record interaction: %w", domain.ErrTransient))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestBindErrorNamesJSONFields(t *testing.T) {
	UseJSONFieldNames()

	type request struct {
		VerificationID string `json:"verification_id" binding:"required"`
		Code           string `json:"code" binding:"required,len=6,numeric"`
	}
	router := gin.New()
	router.POST("/verify", func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"verification_id":"abc","code":"12"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid fields: code (len)", decodeError(t, w))

	w = post(`{"code":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeError(t, w))

	w = post(`{"verification_id":"abc","code":"123456"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
