package models

// DashboardError represents a dashboard error with a stable code
type DashboardError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DashboardError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrGuildNotFound      = &DashboardError{Code: "GUILD_NOT_FOUND", Message: "Guild not found"}
	ErrItemNotFound       = &DashboardError{Code: "ITEM_NOT_FOUND", Message: "Item not found"}
	ErrNotAuthenticated   = &DashboardError{Code: "NOT_AUTHENTICATED", Message: "Not authenticated"}
	ErrUnauthorized       = &DashboardError{Code: "UNAUTHORIZED", Message: "Session expired or invalid"}
	ErrBackendUnavailable = &DashboardError{Code: "BACKEND_UNAVAILABLE", Message: "Backend request failed"}
	ErrInvalidAPIKey      = &DashboardError{Code: "INVALID_API_KEY", Message: "API key validation failed"}
	ErrLoginFailed        = &DashboardError{Code: "LOGIN_FAILED", Message: "Invalid username or password"}
	ErrRegistrationFailed = &DashboardError{Code: "REGISTRATION_FAILED", Message: "Registration failed"}
)
