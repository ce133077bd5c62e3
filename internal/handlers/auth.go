package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dashboard/internal/models"
	"dashboard/internal/service"
)

// AuthHandler serves the login, logout and registration flows
type AuthHandler struct {
	auth    service.AuthService
	session service.SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService, session service.SessionService) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		session: session,
	}
}

// Login authenticates a user against the backend
// POST /api/v1/auth/login (form encoded)
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username":   req.Username,
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		}).Warn("Login failed")
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout drops the current session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the currently authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.session.User()
	if user == nil {
		respondError(c, http.StatusUnauthorized, models.ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ValidateAPIKey checks a game API key and returns the member name it
// resolves to
// POST /api/v1/users/validate-api-key
func (h *AuthHandler) ValidateAPIKey(c *gin.Context) {
	var req models.ValidateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	validation, err := h.auth.ValidateAPIKey(c.Request.Context(), req.APIKey)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, validation)
}

// Register creates a new dashboard account
// POST /api/v1/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
