package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"dashboard/internal/client"
	"dashboard/internal/format"
	"dashboard/internal/models"
)

// logService implements LogService on top of the backend log endpoints
// and the item lookup cache
type logService struct {
	api    client.LogsAPI
	items  ItemService
	logger *logrus.Logger
}

// NewLogService creates a new log normalization service
func NewLogService(api client.LogsAPI, items ItemService, logger *logrus.Logger) LogService {
	return &logService{
		api:    api,
		items:  items,
		logger: logger,
	}
}

// GetGuildLogs returns one rendered page of a single guild's log
func (s *logService) GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.RenderedLogPage, error) {
	page, err := s.api.GetGuildLogs(ctx, guildID, query)
	if err != nil {
		return nil, err
	}
	return s.renderPage(ctx, page), nil
}

// GetAllLogs returns one rendered page of the cross-guild log
func (s *logService) GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.RenderedLogPage, error) {
	page, err := s.api.GetAllLogs(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.renderPage(ctx, page), nil
}

// renderPage resolves every item the page references in one pass
// through the item cache, then renders each entry. A failed item fetch
// degrades to the id-based fallback names instead of failing the page.
func (s *logService) renderPage(ctx context.Context, page *models.LogPage) *models.RenderedLogPage {
	ids := make([]int, 0, len(page.Logs))
	for _, entry := range page.Logs {
		if id := entry.ReferencedItemID(); id != 0 {
			ids = append(ids, id)
		}
	}

	resolved := make(map[int]*models.Item, len(ids))
	if len(ids) > 0 {
		items, err := s.items.GetItems(ctx, ids)
		if err != nil {
			s.logger.WithError(err).WithField("item_count", len(ids)).
				Warn("Item resolution failed, rendering logs with fallback names")
		}
		for _, item := range items {
			resolved[item.ID] = item
		}
	}

	rendered := make([]*models.RenderedLog, 0, len(page.Logs))
	for _, entry := range page.Logs {
		rendered = append(rendered, RenderLog(entry, resolved))
		logEntriesRendered.WithLabelValues(string(entry.Type)).Inc()
	}

	return &models.RenderedLogPage{Logs: rendered, Total: page.Total}
}

// RenderLog turns one log entry into its display form, attaching the
// resolved item record when the entry references one
func RenderLog(entry *models.GuildLog, items map[int]*models.Item) *models.RenderedLog {
	message, tooltip := FormatLogMessage(entry, items)

	rendered := &models.RenderedLog{
		ID:        entry.ID,
		Time:      entry.Time,
		Type:      entry.Type,
		GuildName: entry.GuildName,
		Message:   message,
		Tooltip:   tooltip,
	}

	if id := referencedID(entry); id != 0 {
		if item, ok := items[id]; ok {
			rendered.Item = &models.RenderedItem{
				ID:     item.ID,
				Name:   item.Name,
				Rarity: item.Rarity,
				Color:  item.Rarity.Color(),
				Icon:   item.Icon,
			}
		}
	}

	return rendered
}

// FormatLogMessage maps one log entry to a one-line summary and a
// tooltip carrying the unabridged names and raw identifiers. Unknown
// discriminants get a generic summary; this function never fails.
func FormatLogMessage(entry *models.GuildLog, items map[int]*models.Item) (message, tooltip string) {
	displayName, _ := format.SplitAccountName(entry.User)

	switch entry.Type {
	case models.LogTypeKick:
		kickedBy, _ := format.SplitAccountName(entry.KickedBy)
		return fmt.Sprintf("%s kicked %s", kickedBy, displayName),
			fmt.Sprintf("Full names:\nKicked: %s\nBy: %s", entry.User, entry.KickedBy)

	case models.LogTypeInvited:
		invitedBy, _ := format.SplitAccountName(entry.InvitedBy)
		return fmt.Sprintf("%s invited %s", invitedBy, displayName),
			fmt.Sprintf("Full names:\nInvited: %s\nBy: %s", entry.User, entry.InvitedBy)

	case models.LogTypeInviteDeclined:
		declinedBy, _ := format.SplitAccountName(entry.DeclinedBy)
		return fmt.Sprintf("%s declined invite for %s", declinedBy, displayName),
			fmt.Sprintf("Full names:\nInvited: %s\nBy: %s", entry.User, entry.DeclinedBy)

	case models.LogTypeJoin:
		return fmt.Sprintf("%s joined", displayName),
			fmt.Sprintf("Full name: %s", entry.User)

	case models.LogTypeRankChange:
		changedBy, _ := format.SplitAccountName(entry.ChangedBy)
		return fmt.Sprintf("%s changed %s's rank from %s to %s",
				changedBy, displayName, entry.OldRank, entry.NewRank),
			fmt.Sprintf("Full names:\nMember: %s\nBy: %s", entry.User, entry.ChangedBy)

	case models.LogTypeStash:
		if entry.Coins != nil && *entry.Coins != 0 {
			return fmt.Sprintf("%s %sed %s", displayName, entry.Operation, format.FormatCoins(*entry.Coins)),
				fmt.Sprintf("Full name: %s", entry.User)
		}
		if entry.ItemID != nil || entry.ItemName != "" {
			count := 1
			if entry.Count != nil {
				count = *entry.Count
			}
			return fmt.Sprintf("%s %sed %dx %s", displayName, entry.Operation, count, stashItemName(entry, items)),
				fmt.Sprintf("Full name: %s\nItem ID: %s", entry.User, optionalID(entry.ItemID))
		}
		return fmt.Sprintf("%s performed a stash operation", displayName),
			fmt.Sprintf("Full name: %s", entry.User)

	case models.LogTypeTreasury:
		count := 1
		if entry.Count != nil {
			count = *entry.Count
		}
		return fmt.Sprintf("%s deposited %dx %s", displayName, count, stashItemName(entry, items)),
			fmt.Sprintf("Full name: %s\nItem ID: %s", entry.User, optionalID(entry.ItemID))

	case models.LogTypeMOTD:
		return fmt.Sprintf("%s changed the Message of the Day", displayName),
			fmt.Sprintf("Full name: %s\nNew MOTD: %s", entry.User, entry.MOTD)

	case models.LogTypeUpgrade:
		name := upgradeName(entry, items)
		switch entry.Action {
		case "queued":
			return fmt.Sprintf("%s queued %s", displayName, name),
				fmt.Sprintf("Full name: %s\nUpgrade ID: %s", entry.User, optionalID(entry.UpgradeID))
		case "cancelled":
			return fmt.Sprintf("%s cancelled %s", displayName, name),
				fmt.Sprintf("Full name: %s\nUpgrade ID: %s", entry.User, optionalID(entry.UpgradeID))
		case "completed":
			return fmt.Sprintf("%s was completed", name),
				fmt.Sprintf("Upgrade ID: %s", optionalID(entry.UpgradeID))
		case "sped_up":
			return fmt.Sprintf("%s sped up %s", displayName, name),
				fmt.Sprintf("Full name: %s\nUpgrade ID: %s", entry.User, optionalID(entry.UpgradeID))
		default:
			return fmt.Sprintf("%s performed an upgrade action: %s", displayName, entry.Action),
				fmt.Sprintf("Full name: %s\nUpgrade ID: %s", entry.User, optionalID(entry.UpgradeID))
		}

	case models.LogTypeInfluence:
		verb := "gained"
		amount := entry.Amount
		if amount < 0 {
			verb = "spent"
			amount = -amount
		}
		return fmt.Sprintf("%s %s %d influence", displayName, verb, amount),
			fmt.Sprintf("Full name: %s\nActivity: %d", entry.User, entry.Activity)

	case models.LogTypeMission:
		return fmt.Sprintf("%s %s mission: %s", displayName, entry.Status, entry.MissionName),
			fmt.Sprintf("Full name: %s", entry.User)

	default:
		raw, _ := json.Marshal(entry)
		return fmt.Sprintf("Unknown action (%s)", entry.Type),
			fmt.Sprintf("Raw log data: %s", raw)
	}
}

// stashItemName resolves the display name of a stash or treasury item:
// cached record first, then the name the backend already attached,
// then the bare id
func stashItemName(entry *models.GuildLog, items map[int]*models.Item) string {
	if entry.ItemID != nil {
		if item, ok := items[*entry.ItemID]; ok && item.Name != "" {
			return item.Name
		}
	}
	if entry.ItemName != "" {
		return entry.ItemName
	}
	if entry.ItemID != nil {
		return fmt.Sprintf("Item #%d", *entry.ItemID)
	}
	return "Unknown item"
}

// upgradeName resolves an upgrade's display name: explicit name, then
// the resolved item record, then the bare id
func upgradeName(entry *models.GuildLog, items map[int]*models.Item) string {
	if entry.UpgradeName != "" {
		return entry.UpgradeName
	}
	if entry.UpgradeID != nil {
		if item, ok := items[*entry.UpgradeID]; ok && item.Name != "" {
			return item.Name
		}
		return fmt.Sprintf("Upgrade #%d", *entry.UpgradeID)
	}
	return "Unknown upgrade"
}

func referencedID(entry *models.GuildLog) int {
	switch entry.Type {
	case models.LogTypeStash, models.LogTypeTreasury:
		if entry.ItemID != nil {
			return *entry.ItemID
		}
	case models.LogTypeUpgrade:
		if entry.UpgradeID != nil {
			return *entry.UpgradeID
		}
	}
	return 0
}

func optionalID(id *int) string {
	if id == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *id)
}
