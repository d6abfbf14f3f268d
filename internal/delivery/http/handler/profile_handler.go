package handler

import (
	"net/http"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

// imageFormField is the multipart field carrying the uploaded image
const imageFormField = "image"

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile with images and prompts
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.FullProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile handles POST /profile
// @Summary Create or update my profile
// @Description Partial update; omitted or null fields keep their value
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.ProfileFields true "Profile fields"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req domain.ProfileFields
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.profileUseCase.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadImage handles POST /profile/images
// @Summary Upload a profile image
// @Description Appends one image; at most 6 per profile
// @Tags profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} domain.Image
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/images [post]
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	header, err := c.FormFile(imageFormField)
	if err != nil {
		badRequest(c, "image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		badRequest(c, "failed to read image file")
		return
	}
	defer file.Close()

	image, err := h.profileUseCase.UploadImage(
		c.Request.Context(), userID, file, header.Size, header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteImage handles DELETE /profile/images/:order
// @Summary Delete a profile image
// @Description Removes the image and shifts later images down
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param order path int true "Image order (0-5)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/images/{order} [delete]
func (h *ProfileHandler) DeleteImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	order, ok := orderParam(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteImage(c.Request.Context(), userID, order); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "image deleted"})
}

// Finalize handles POST /profile/finalize
// @Summary Finalize profile
// @Description Marks the profile complete or lists what is missing
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.FinalizeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/finalize [post]
func (h *ProfileHandler) Finalize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.profileUseCase.Finalize(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteAccount handles DELETE /profile
// @Summary Delete account
// @Description Deletes the user with profile, media, interactions and matches
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "account deleted"})
}
