package handler

import (
	"net/http"

	"github.com/gdugdh24/pairly-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase *auth.PhoneAuthUseCase
}

func NewAuthHandler(authUseCase *auth.PhoneAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// PhoneLoginRequest represents phone login request
type PhoneLoginRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// PhoneVerifyRequest represents phone verification request
type PhoneVerifyRequest struct {
	VerificationID string `json:"verification_id" binding:"required"`
	Code           string `json:"code" binding:"required,len=6,numeric"`
}

// PhoneLogin handles phone login
// @Summary Start phone login
// @Description Send a one-time code to the phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PhoneLoginRequest true "Phone number in E.164 format"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/phone/login [post]
func (h *AuthHandler) PhoneLogin(c *gin.Context) {
	var req PhoneLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authUseCase.StartLogin(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PhoneVerify handles phone verification
// @Summary Verify phone
// @Description Exchange the one-time code for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PhoneVerifyRequest true "Verification id and code"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/phone/verify [post]
func (h *AuthHandler) PhoneVerify(c *gin.Context) {
	var req PhoneVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authUseCase.Verify(c.Request.Context(), req.VerificationID, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns current user info
// @Summary Get current user
// @Description Get authenticated user id
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
	})
}
