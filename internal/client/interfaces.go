package client

import (
	"context"

	"dashboard/internal/models"
)

// GuildsAPI fetches guild rosters and metadata
type GuildsAPI interface {
	GetGuilds(ctx context.Context, forceRefresh bool) ([]*models.Guild, error)
}

// LogsAPI fetches paginated guild activity logs
type LogsAPI interface {
	GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.LogPage, error)
	GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.LogPage, error)
}

// ItemsAPI fetches and searches item records
type ItemsAPI interface {
	GetItem(ctx context.Context, id int) (*models.Item, error)
	GetItems(ctx context.Context, ids []int) ([]*models.Item, error)
	SearchItems(ctx context.Context, query string, limit int) ([]*models.Item, error)
}

// AuthAPI drives the login and registration flows
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ValidateAPIKey(ctx context.Context, apiKey string) (*models.APIKeyValidation, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// LotteryAPI fetches lottery standings
type LotteryAPI interface {
	GetLotteryStats(ctx context.Context) (*models.LotteryStats, error)
}
