package handler

import (
	"net/http"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewUserHandler(profileUseCase *profile.ProfileUseCase) *UserHandler {
	return &UserHandler{
		profileUseCase: profileUseCase,
	}
}

// UpdateEmailRequest represents email update request
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
}

// GetPreferences handles GET /user/preferences
// @Summary Get feed preferences
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/preferences [get]
func (h *UserHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := h.profileUseCase.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// SetPreferences handles POST /user/preferences
// @Summary Replace feed preferences
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.Preferences true "Preferences"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/preferences [post]
func (h *UserHandler) SetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req domain.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	prefs, err := h.profileUseCase.SetPreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdateEmail handles PUT /user/email
// @Summary Update contact email
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateEmailRequest true "Email"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/email [put]
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "a valid email is required")
		return
	}

	if err := h.profileUseCase.UpdateEmail(c.Request.Context(), userID, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "email updated"})
}
