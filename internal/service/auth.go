package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"dashboard/internal/client"
	"dashboard/internal/models"
)

// authService implements AuthService by driving the backend auth
// endpoints and keeping the session state in step
type authService struct {
	api     client.AuthAPI
	session SessionService
	logger  *logrus.Logger
}

// NewAuthService creates a new auth flow service
func NewAuthService(api client.AuthAPI, session SessionService, logger *logrus.Logger) AuthService {
	return &authService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

// Login authenticates the user and stores the resulting session
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.session.Set(resp.AccessToken, resp.User)

	s.logger.WithFields(logrus.Fields{
		"username": username,
	}).Info("User logged in successfully")

	return resp.User, nil
}

// Logout drops the current session
func (s *authService) Logout() {
	s.session.Clear()
}

// ValidateAPIKey checks a game API key and resolves the member name it
// belongs to
func (s *authService) ValidateAPIKey(ctx context.Context, apiKey string) (*models.APIKeyValidation, error) {
	return s.api.ValidateAPIKey(ctx, apiKey)
}

// Register creates a dashboard account for a validated member
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	user, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("User registered successfully")

	return user, nil
}
