package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the generic status/message envelope
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// respondError maps a usecase error onto its HTTP status. Internal failures
// are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = http.StatusUnauthorized, publicMessage(err, domain.ErrUnauthorized)
	case errors.Is(err, domain.ErrCapacityExceeded):
		status, message = http.StatusBadRequest, publicMessage(err, domain.ErrCapacityExceeded)
	case errors.Is(err, domain.ErrPreferencesRequired):
		status, message = http.StatusBadRequest, "set your preferences before requesting the feed"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, publicMessage(err, domain.ErrInvalidInput)
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, publicMessage(err, domain.ErrForbidden)
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, publicMessage(err, domain.ErrNotFound)
	case errors.Is(err, domain.ErrInvalidReference):
		status, message = http.StatusNotFound, "referenced user not found"
	case errors.Is(err, domain.ErrConflict):
		status, message = http.StatusConflict, "conflicting update, please retry"
	case errors.Is(err, domain.ErrTransient):
		c.Header("Retry-After", "1")
		status, message = http.StatusServiceUnavailable, "service temporarily unavailable"
	}

	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	c.JSON(status, ErrorResponse{Error: message})
}

// publicMessage trims usecase wrapping ("failed to ...: ") so the message
// starts at the category. Driver errors collapse to the bare category.
func publicMessage(err, category error) string {
	msg := err.Error()
	if i := strings.Index(msg, category.Error()); i >= 0 {
		msg = msg[i:]
	}
	if strings.Contains(msg, "pq: ") {
		return category.Error()
	}
	return msg
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// currentUserID reads the id placed in the context by the auth middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func orderParam(c *gin.Context) (int, bool) {
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil {
		badRequest(c, "invalid order")
		return 0, false
	}
	return order, true
}
