package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard/internal/models"
)

// respondError writes the common error payload. Typed dashboard errors
// keep their code; anything else is reported as a backend failure.
func respondError(c *gin.Context, status int, err error) {
	code := models.ErrBackendUnavailable.Code
	var dashErr *models.DashboardError
	if errors.As(err, &dashErr) {
		code = dashErr.Code
	}

	c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		RequestID: c.GetString("request_id"),
	})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrGuildNotFound), errors.Is(err, models.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrLoginFailed):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrInvalidAPIKey), errors.Is(err, models.ErrRegistrationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
