package handler

import (
	"net/http"

	"github.com/gdugdh24/pairly-backend/internal/usecase/prompt"
	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	promptUseCase *prompt.PromptUseCase
}

func NewPromptHandler(promptUseCase *prompt.PromptUseCase) *PromptHandler {
	return &PromptHandler{
		promptUseCase: promptUseCase,
	}
}

// List handles GET /prompts
// @Summary List my prompts
// @Tags prompts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Prompt
// @Failure 401 {object} ErrorResponse
// @Router /prompts [get]
func (h *PromptHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prompts, err := h.promptUseCase.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// Create handles POST /prompts
// @Summary Add a prompt
// @Description Appends a prompt; at most 3 per profile
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body prompt.PromptRequest true "Question and answer"
// @Success 201 {object} domain.Prompt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /prompts [post]
func (h *PromptHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req prompt.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "question and answer are required")
		return
	}

	created, err := h.promptUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /prompts/:order
// @Summary Update a prompt
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order path int true "Prompt order (0-2)"
// @Param request body prompt.PromptRequest true "Question and answer"
// @Success 200 {object} domain.Prompt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompts/{order} [put]
func (h *PromptHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	order, ok := orderParam(c)
	if !ok {
		return
	}

	var req prompt.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "question and answer are required")
		return
	}

	updated, err := h.promptUseCase.Update(c.Request.Context(), userID, order, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /prompts/:order
// @Summary Delete a prompt
// @Description Removes the prompt and shifts later prompts down
// @Tags prompts
// @Security BearerAuth
// @Produce json
// @Param order path int true "Prompt order (0-2)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompts/{order} [delete]
func (h *PromptHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	order, ok := orderParam(c)
	if !ok {
		return
	}

	if err := h.promptUseCase.Delete(c.Request.Context(), userID, order); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "prompt deleted"})
}
