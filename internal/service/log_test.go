package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/internal/models"
)

type fakeLogsAPI struct {
	page *models.LogPage
	err  error
}

func (f *fakeLogsAPI) GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.LogPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeLogsAPI) GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.LogPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func intPtr(v int) *int { return &v }

func TestFormatLogMessage_AllKnownTypes(t *testing.T) {
	entries := []*models.GuildLog{
		{Type: models.LogTypeKick, User: "Nefretta.6810", KickedBy: "Officer.1234"},
		{Type: models.LogTypeInvited, User: "Nefretta.6810", InvitedBy: "Officer.1234"},
		{Type: models.LogTypeInviteDeclined, User: "Nefretta.6810", DeclinedBy: "Officer.1234"},
		{Type: models.LogTypeJoin, User: "Nefretta.6810"},
		{Type: models.LogTypeRankChange, User: "Nefretta.6810", ChangedBy: "Officer.1234", OldRank: "Member", NewRank: "Officer"},
		{Type: models.LogTypeStash, User: "Nefretta.6810", Operation: "deposit", ItemID: intPtr(19721), Count: intPtr(5)},
		{Type: models.LogTypeTreasury, User: "Nefretta.6810", ItemID: intPtr(19721), Count: intPtr(3)},
		{Type: models.LogTypeMOTD, User: "Officer.1234", MOTD: "New schedule up"},
		{Type: models.LogTypeUpgrade, User: "Officer.1234", Action: "queued", UpgradeID: intPtr(144)},
		{Type: models.LogTypeInfluence, User: "Nefretta.6810", Amount: 500, Activity: 2},
		{Type: models.LogTypeMission, User: "Nefretta.6810", Status: "success", MissionName: "Deep Trouble"},
	}
	require.Len(t, entries, len(models.KnownLogTypes()))

	for _, entry := range entries {
		message, tooltip := FormatLogMessage(entry, nil)
		assert.NotEmpty(t, message, "type %s", entry.Type)
		assert.NotEmpty(t, tooltip, "type %s", entry.Type)
		assert.NotContains(t, message, "Unknown action", "type %s", entry.Type)
	}
}

func TestFormatLogMessage_Kick(t *testing.T) {
	entry := &models.GuildLog{
		Type:     models.LogTypeKick,
		User:     "dio di morte.7930",
		KickedBy: "Officer.1234",
	}

	message, tooltip := FormatLogMessage(entry, nil)
	assert.Equal(t, "Officer kicked dio di morte", message)
	assert.Contains(t, tooltip, "dio di morte.7930")
	assert.Contains(t, tooltip, "Officer.1234")
}

func TestFormatLogMessage_SelfKickIsStillAKick(t *testing.T) {
	entry := &models.GuildLog{
		Type:     models.LogTypeKick,
		User:     "Nefretta.6810",
		KickedBy: "Nefretta.6810",
	}

	message, _ := FormatLogMessage(entry, nil)
	assert.Equal(t, "Nefretta kicked Nefretta", message)
}

func TestFormatLogMessage_StashCoins(t *testing.T) {
	entry := &models.GuildLog{
		Type:      models.LogTypeStash,
		User:      "Nefretta.6810",
		Operation: "deposit",
		Coins:     intPtr(123456),
	}

	message, _ := FormatLogMessage(entry, nil)
	assert.Equal(t, "Nefretta deposited 12g 34s 56c", message)
}

func TestFormatLogMessage_StashItemNameFallbacks(t *testing.T) {
	base := models.GuildLog{
		Type:      models.LogTypeStash,
		User:      "Nefretta.6810",
		Operation: "withdraw",
		ItemID:    intPtr(19721),
		Count:     intPtr(2),
	}

	resolved := map[int]*models.Item{
		19721: {ID: 19721, Name: "Glob of Ectoplasm", Rarity: models.RarityExotic},
	}

	// Cached record wins
	entry := base
	message, _ := FormatLogMessage(&entry, resolved)
	assert.Equal(t, "Nefretta withdrawed 2x Glob of Ectoplasm", message)

	// Backend-attached name next
	entry = base
	entry.ItemName = "Mystic Coin"
	message, _ = FormatLogMessage(&entry, nil)
	assert.Equal(t, "Nefretta withdrawed 2x Mystic Coin", message)

	// Bare id last
	entry = base
	message, _ = FormatLogMessage(&entry, nil)
	assert.Equal(t, "Nefretta withdrawed 2x Item #19721", message)
}

func TestFormatLogMessage_UpgradeCompletedHasNoActor(t *testing.T) {
	entry := &models.GuildLog{
		Type:        models.LogTypeUpgrade,
		User:        "Officer.1234",
		Action:      "completed",
		UpgradeName: "Guild Workshop",
	}

	message, _ := FormatLogMessage(entry, nil)
	assert.Equal(t, "Guild Workshop was completed", message)
	assert.NotContains(t, message, "Officer")
}

func TestFormatLogMessage_UpgradeNameFallbacks(t *testing.T) {
	entry := &models.GuildLog{
		Type:      models.LogTypeUpgrade,
		User:      "Officer.1234",
		Action:    "queued",
		UpgradeID: intPtr(144),
	}

	resolved := map[int]*models.Item{
		144: {ID: 144, Name: "Guild Armorer", Rarity: models.RarityBasic},
	}
	message, _ := FormatLogMessage(entry, resolved)
	assert.Equal(t, "Officer queued Guild Armorer", message)

	message, _ = FormatLogMessage(entry, nil)
	assert.Equal(t, "Officer queued Upgrade #144", message)

	entry.UpgradeID = nil
	message, _ = FormatLogMessage(entry, nil)
	assert.Equal(t, "Officer queued Unknown upgrade", message)
}

func TestFormatLogMessage_InfluenceSpent(t *testing.T) {
	entry := &models.GuildLog{
		Type:   models.LogTypeInfluence,
		User:   "Nefretta.6810",
		Amount: -200,
	}

	message, _ := FormatLogMessage(entry, nil)
	assert.Equal(t, "Nefretta spent 200 influence", message)
}

func TestFormatLogMessage_UnknownType(t *testing.T) {
	entry := &models.GuildLog{
		Type: models.LogType("wvw_claim"),
		User: "Nefretta.6810",
	}

	message, tooltip := FormatLogMessage(entry, nil)
	assert.Equal(t, "Unknown action (wvw_claim)", message)
	assert.Contains(t, tooltip, "wvw_claim")
	assert.Contains(t, tooltip, "Raw log data")
}

func TestRenderLog_AttachesResolvedItem(t *testing.T) {
	entry := &models.GuildLog{
		ID:        7,
		Time:      time.Date(2026, 1, 6, 20, 0, 0, 0, time.UTC),
		Type:      models.LogTypeTreasury,
		User:      "Nefretta.6810",
		ItemID:    intPtr(19721),
		Count:     intPtr(1),
		GuildName: "Vengeance is Power",
	}
	resolved := map[int]*models.Item{
		19721: {ID: 19721, Name: "Glob of Ectoplasm", Rarity: models.RarityExotic, Icon: "ecto.png"},
	}

	rendered := RenderLog(entry, resolved)

	assert.Equal(t, int64(7), rendered.ID)
	assert.Equal(t, "Vengeance is Power", rendered.GuildName)
	require.NotNil(t, rendered.Item)
	assert.Equal(t, "Glob of Ectoplasm", rendered.Item.Name)
	assert.Equal(t, "#ffa405", rendered.Item.Color)
}

func TestGetGuildLogs_RendersPageWithItemResolution(t *testing.T) {
	logsAPI := &fakeLogsAPI{
		page: &models.LogPage{
			Logs: []*models.GuildLog{
				{ID: 1, Type: models.LogTypeTreasury, User: "Nefretta.6810", ItemID: intPtr(5), Count: intPtr(1)},
				{ID: 2, Type: models.LogTypeJoin, User: "dio di morte.7930"},
			},
			Total: 2,
		},
	}
	itemsAPI := &fakeItemsAPI{}
	items := newTestItemService(itemsAPI)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := NewLogService(logsAPI, items, logger)

	page, err := svc.GetGuildLogs(context.Background(), "guild-1", models.LogsQuery{Page: 1, Limit: 25})
	require.NoError(t, err)
	require.Len(t, page.Logs, 2)

	assert.Equal(t, "Nefretta deposited 1x Item 5", page.Logs[0].Message)
	require.NotNil(t, page.Logs[0].Item)
	assert.Equal(t, "dio di morte joined", page.Logs[1].Message)
	assert.Nil(t, page.Logs[1].Item)

	assert.Equal(t, 1, itemsAPI.batchCount(), "one page resolves items in one pass")
}

func TestGetGuildLogs_ItemFailureDegradesToFallbackNames(t *testing.T) {
	logsAPI := &fakeLogsAPI{
		page: &models.LogPage{
			Logs: []*models.GuildLog{
				{ID: 1, Type: models.LogTypeTreasury, User: "Nefretta.6810", ItemID: intPtr(5), Count: intPtr(1)},
			},
			Total: 1,
		},
	}
	itemsAPI := &fakeItemsAPI{failing: true}
	items := newTestItemService(itemsAPI)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := NewLogService(logsAPI, items, logger)

	page, err := svc.GetGuildLogs(context.Background(), "guild-1", models.LogsQuery{Page: 1, Limit: 25})
	require.NoError(t, err, "item failures must not fail the page")
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "Nefretta deposited 1x Item #5", page.Logs[0].Message)
}

func TestGetGuildLogs_BackendError(t *testing.T) {
	logsAPI := &fakeLogsAPI{err: errors.New("backend down")}
	items := newTestItemService(&fakeItemsAPI{})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := NewLogService(logsAPI, items, logger)

	_, err := svc.GetGuildLogs(context.Background(), "guild-1", models.LogsQuery{})
	assert.Error(t, err)
}
