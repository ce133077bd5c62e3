package models

import (
	"time"
)

// LogPage is one page of raw guild logs as returned by the backend
type LogPage struct {
	Logs  []*GuildLog `json:"logs"`
	Total int         `json:"total"`
}

// RenderedItem is the display form of an item attached to a log entry
type RenderedItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity,omitempty"`
	Color  string `json:"color,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// RenderedLog is one normalized log entry ready for display: a one
// line summary plus an optional tooltip with the unabridged detail
type RenderedLog struct {
	ID        int64         `json:"id"`
	Time      time.Time     `json:"time"`
	Type      LogType       `json:"type"`
	GuildName string        `json:"guild_name,omitempty"`
	Message   string        `json:"message"`
	Tooltip   string        `json:"tooltip,omitempty"`
	Item      *RenderedItem `json:"item,omitempty"`
}

// RenderedLogPage is one page of normalized log entries
type RenderedLogPage struct {
	Logs  []*RenderedLog `json:"logs"`
	Total int            `json:"total"`
}

// GuildSummary aggregates the dashboard tiles for one guild
type GuildSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Tag         string     `json:"tag"`
	Level       int        `json:"level"`
	MemberCount int        `json:"member_count"`
	RankCount   int        `json:"rank_count"`
	Influence   int        `json:"influence"`
	Aetherium   int        `json:"aetherium"`
	Resonance   int        `json:"resonance"`
	Favor       int        `json:"favor"`
	LastUpdated *time.Time `json:"last_updated"`
}

// MembersPage is the sorted, filtered roster view of one guild
type MembersPage struct {
	Members []GuildMember `json:"members"`
	Total   int           `json:"total"`
}

// ParsedMOTD is the structured form of a guild's message of the day
type ParsedMOTD struct {
	DiscordURL string           `json:"discord_url,omitempty"`
	WeekRange  string           `json:"week_range,omitempty"`
	Schedule   []ScheduledEvent `json:"schedule"`
	FullMOTD   string           `json:"full_motd"`
}

// ScheduledEvent is one scheduled entry extracted from the MOTD
type ScheduledEvent struct {
	Day   string `json:"day"`
	Time  string `json:"time"`
	Event string `json:"event"`
}

// User represents the authenticated dashboard user
type User struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
	IsActive    bool     `json:"is_active"`
	IsSuperuser bool     `json:"is_superuser"`
}

// LoginResponse is the backend's answer to a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// APIKeyValidation is the backend's answer to a key validation request
type APIKeyValidation struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// LotteryWinner is one past lottery winner
type LotteryWinner struct {
	ID          int64      `json:"id"`
	GuildID     string     `json:"guild_id"`
	AccountID   int64      `json:"account_id"`
	WeekNumber  int        `json:"week_number"`
	Year        int        `json:"year"`
	PrizeAmount int        `json:"prize_amount"`
	PaidOut     bool       `json:"paid_out"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at"`

	Account *LotteryAccount `json:"account,omitempty"`
}

// LotteryAccount carries the winner's current account name
type LotteryAccount struct {
	CurrentAccountName string `json:"current_account_name"`
}

// LotteryStats is the lottery standings panel payload
type LotteryStats struct {
	CurrentPot          int             `json:"current_pot"`
	CurrentEntriesCount int             `json:"current_entries_count"`
	PastWinners         []LotteryWinner `json:"past_winners"`
}

// LotteryOverview is the dashboard's derived view of the lottery:
// the advertised jackpot is 90% of the pot, and only the most recent
// winners are shown
type LotteryOverview struct {
	Jackpot        int             `json:"jackpot"`
	JackpotDisplay string          `json:"jackpot_display"`
	EntriesCount   int             `json:"entries_count"`
	RecentWinners  []LotteryWinner `json:"recent_winners"`
}

// ErrorResponse is the JSON shape of every handler error
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
