package models

import (
	"time"
)

// LogType is the discriminant of a guild log entry
type LogType string

// Known log types
const (
	LogTypeKick           LogType = "kick"
	LogTypeInvited        LogType = "invited"
	LogTypeInviteDeclined LogType = "invite_declined"
	LogTypeJoin           LogType = "join"
	LogTypeRankChange     LogType = "rank_change"
	LogTypeStash          LogType = "stash"
	LogTypeTreasury       LogType = "treasury"
	LogTypeMOTD           LogType = "motd"
	LogTypeUpgrade        LogType = "upgrade"
	LogTypeInfluence      LogType = "influence"
	LogTypeMission        LogType = "mission"
)

// KnownLogTypes returns every log type the dashboard renders natively.
// Anything else falls back to a generic summary.
func KnownLogTypes() []LogType {
	return []LogType{
		LogTypeKick,
		LogTypeInvited,
		LogTypeInviteDeclined,
		LogTypeJoin,
		LogTypeRankChange,
		LogTypeStash,
		LogTypeTreasury,
		LogTypeMOTD,
		LogTypeUpgrade,
		LogTypeInfluence,
		LogTypeMission,
	}
}

// Known reports whether the log type has a dedicated renderer
func (t LogType) Known() bool {
	for _, known := range KnownLogTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// GuildLog represents one entry of a guild's activity log as returned
// by the backend. The Type field selects which of the optional variant
// fields are meaningful; unknown types must still render.
type GuildLog struct {
	ID        int64     `json:"id"`
	Time      time.Time `json:"time"`
	Type      LogType   `json:"type"`
	User      string    `json:"user"`
	GuildName string    `json:"guild_name,omitempty"` // only set in the cross-guild view

	// kick / invited / invite_declined / rank_change
	KickedBy   string `json:"kicked_by,omitempty"`
	InvitedBy  string `json:"invited_by,omitempty"`
	DeclinedBy string `json:"declined_by,omitempty"`
	ChangedBy  string `json:"changed_by,omitempty"`
	OldRank    string `json:"old_rank,omitempty"`
	NewRank    string `json:"new_rank,omitempty"`

	// stash / treasury
	Operation string `json:"operation,omitempty"`
	ItemID    *int   `json:"item_id,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Coins     *int   `json:"coins,omitempty"`
	ItemName  string `json:"item_name,omitempty"`

	// motd
	MOTD string `json:"motd,omitempty"`

	// upgrade
	Action      string `json:"action,omitempty"`
	UpgradeID   *int   `json:"upgrade_id,omitempty"`
	RecipeID    *int   `json:"recipe_id,omitempty"`
	UpgradeName string `json:"upgrade_name,omitempty"`

	// influence
	Amount   int `json:"amount,omitempty"`
	Activity int `json:"activity,omitempty"`

	// mission
	MissionName string `json:"mission_name,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ReferencedItemID returns the item id this entry needs resolved for
// display, or 0 when the entry references none. Stash coin movements
// and entries that already carry an item name need no lookup.
func (l *GuildLog) ReferencedItemID() int {
	switch l.Type {
	case LogTypeStash:
		if l.Coins != nil && *l.Coins != 0 {
			return 0
		}
		if l.ItemName == "" && l.ItemID != nil {
			return *l.ItemID
		}
	case LogTypeTreasury:
		if l.ItemName == "" && l.ItemID != nil {
			return *l.ItemID
		}
	case LogTypeUpgrade:
		if l.UpgradeName == "" && l.UpgradeID != nil {
			return *l.UpgradeID
		}
	}
	return 0
}
