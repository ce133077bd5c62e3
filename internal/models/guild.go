package models

import (
	"time"
)

// RankInvited is the sentinel rank of members who have been invited
// but have not joined yet. It never appears in the guild's rank list
// and always sorts after every real rank.
const RankInvited = "invited"

// Guild represents one managed guild with its roster and resources.
// Resource counters come from the backend as reported; the dashboard
// never computes them locally.
type Guild struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	ShortName   string        `json:"short_name"`
	Tag         string        `json:"tag"`
	Level       int           `json:"level"`
	MOTD        string        `json:"motd"`
	Influence   int           `json:"influence"`
	Aetherium   int           `json:"aetherium"`
	Resonance   int           `json:"resonance"`
	Favor       int           `json:"favor"`
	Emblem      *GuildEmblem  `json:"emblem,omitempty"`
	Members     []GuildMember `json:"members"`
	Ranks       []GuildRank   `json:"ranks"`
	LastUpdated *time.Time    `json:"last_updated"`
	LastLogID   int64         `json:"last_log_id"`
}

// GuildMember represents one roster entry
type GuildMember struct {
	Name      string     `json:"name"`
	FullName  string     `json:"full_name"`
	Rank      string     `json:"rank"`
	Joined    *time.Time `json:"joined"`
	WvWMember bool       `json:"wvw_member"`
}

// GuildRank represents a guild rank with its sort order and permissions
type GuildRank struct {
	ID          string   `json:"id"`
	Order       int      `json:"order"`
	Permissions []string `json:"permissions"`
	Icon        string   `json:"icon,omitempty"`
}

// GuildEmblem describes the guild's emblem layers
type GuildEmblem struct {
	Background EmblemLayer `json:"background"`
	Foreground EmblemLayer `json:"foreground"`
	Flags      []string    `json:"flags"`
}

// EmblemLayer is one layer of a guild emblem
type EmblemLayer struct {
	ID     int   `json:"id"`
	Colors []int `json:"colors"`
}

// RankOrder resolves a member rank id against the guild's rank list.
// Unresolvable ranks get order 0, matching how the roster view treats
// them.
func (g *Guild) RankOrder(rankID string) int {
	for _, rank := range g.Ranks {
		if rank.ID == rankID {
			return rank.Order
		}
	}
	return 0
}
