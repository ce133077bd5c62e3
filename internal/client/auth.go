package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"dashboard/internal/models"
)

// Login authenticates against the backend. The endpoint takes a
// form-encoded body, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.LoginResponse
	if err := c.postForm(ctx, "/api/auth/login", form, &resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, models.ErrLoginFailed
		}
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ValidateAPIKey asks the backend to validate a game API key and
// resolve the account name it belongs to
func (c *Client) ValidateAPIKey(ctx context.Context, apiKey string) (*models.APIKeyValidation, error) {
	req := models.ValidateAPIKeyRequest{APIKey: apiKey}

	var resp models.APIKeyValidation
	if err := c.postJSON(ctx, "/api/users/validate-api-key", req, &resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, models.ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("api key validation failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new dashboard account for a validated member
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.postJSON(ctx, "/api/users/register", req, &user); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, models.ErrRegistrationFailed
		}
		return nil, fmt.Errorf("registration request failed: %w", err)
	}
	return &user, nil
}
