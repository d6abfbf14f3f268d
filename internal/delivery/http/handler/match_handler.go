package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/pairly-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// ListMatches handles GET /matches
// @Summary List matches
// @Description Matches of the caller, most recent activity first
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchSummary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMessages handles GET /matches/:id/messages
// @Summary Get messages
// @Description Messages created strictly after cursor, oldest first
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Param cursor query string false "RFC3339 timestamp of the last seen message"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} domain.MessagePage
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/messages [get]
func (h *MatchHandler) GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}

	page, err := h.matchUseCase.GetMessages(c.Request.Context(), matchID, userID, c.Query("cursor"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// SendMessage handles POST /matches/:id/messages
// @Summary Send message
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body match.SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/messages [post]
func (h *MatchHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req match.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message text is required")
		return
	}

	message, err := h.matchUseCase.SendMessage(c.Request.Context(), matchID, userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// MarkRead handles POST /matches/:id/read
// @Summary Mark messages read
// @Description Marks the counterpart's messages in the match as read
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} map[string]int64
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/read [post]
func (h *MatchHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	updated, err := h.matchUseCase.MarkRead(c.Request.Context(), matchID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
