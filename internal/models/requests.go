package models

// LogsQuery represents the filters of a paginated log request
type LogsQuery struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=25" binding:"min=1,max=100"`
	Type  string `form:"type"`
	User  string `form:"user"`
}

// MembersQuery represents the roster view filters
type MembersQuery struct {
	Rank   string `form:"rank"`
	Search string `form:"search"`
}

// ItemSearchQuery represents a free-text item search
type ItemSearchQuery struct {
	Query string `form:"query" binding:"required"`
	Limit int    `form:"limit,default=50" binding:"min=1,max=50"`
}

// LoginRequest represents a login form submission. The backend expects
// form encoding, not JSON.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ValidateAPIKeyRequest represents an API key validation request
type ValidateAPIKeyRequest struct {
	APIKey string `json:"api_key" binding:"required,len=72"`
}

// RegisterRequest represents an account registration request. The
// username must come from a prior successful key validation.
type RegisterRequest struct {
	APIKey   string `json:"api_key" binding:"required,len=72"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
