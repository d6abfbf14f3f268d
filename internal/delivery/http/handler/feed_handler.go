package handler

import (
	"net/http"

	"github.com/gdugdh24/pairly-backend/internal/usecase/feed"
	"github.com/gdugdh24/pairly-backend/internal/usecase/interaction"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase        *feed.FeedUseCase
	interactionUseCase *interaction.InteractionUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase, interactionUseCase *interaction.InteractionUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase:        feedUseCase,
		interactionUseCase: interactionUseCase,
	}
}

// GetFeed handles GET /feed
// @Summary Get feed
// @Description Up to 20 candidates matching the caller's preferences
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} feed.FeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.feedUseCase.GetFeed(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Interact handles POST /interact
// @Summary Like or pass
// @Description Records the interaction and reports a match when the like is mutual
// @Tags feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interaction.InteractRequest true "Interaction"
// @Success 200 {object} domain.InteractionResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interact [post]
func (h *FeedHandler) Interact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req interaction.InteractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.interactionUseCase.Interact(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
