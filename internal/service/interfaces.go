package service

import (
	"context"

	"dashboard/internal/models"
)

// ItemService resolves item ids to immutable item records through a
// session-scoped cache
type ItemService interface {
	GetItem(ctx context.Context, id int) (*models.Item, error)
	GetItems(ctx context.Context, ids []int) ([]*models.Item, error)
	SearchItems(ctx context.Context, query string) ([]*models.Item, error)
}

// LogService fetches guild activity logs and normalizes every entry
// into a display-ready summary
type LogService interface {
	GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.RenderedLogPage, error)
	GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.RenderedLogPage, error)
}

// GuildService exposes the cached guild list and roster views
type GuildService interface {
	FetchGuilds(ctx context.Context, forceRefresh bool) ([]*models.Guild, error)
	Guilds() []*models.Guild
	Guild(id string) (*models.Guild, error)
	SortedMembers(guildID string, query models.MembersQuery) (*models.MembersPage, error)
	Summaries() []*models.GuildSummary
	ParsedMOTD(guildID string) (*models.ParsedMOTD, error)
}

// SessionService is the observable auth state shared by all handlers.
// It also serves as the client's token source.
type SessionService interface {
	Set(token string, user *models.User)
	Clear()
	Token() string
	User() *models.User
	Authenticated() bool
	Invalidate()
	Subscribe(fn func()) int
	Unsubscribe(id int)
}

// AuthService drives login, logout and registration flows
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout()
	ValidateAPIKey(ctx context.Context, apiKey string) (*models.APIKeyValidation, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// LotteryService derives the lottery panel view from backend standings
type LotteryService interface {
	Overview(ctx context.Context) (*models.LotteryOverview, error)
}
