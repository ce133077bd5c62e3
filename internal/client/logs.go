package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"dashboard/internal/models"
)

// GetGuildLogs fetches one page of a single guild's activity log
func (c *Client) GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.LogPage, error) {
	var page models.LogPage
	path := fmt.Sprintf("/api/guilds/%s/logs", url.PathEscape(guildID))
	if err := c.get(ctx, path, logQueryValues(query), false, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch guild logs: %w", err)
	}
	return &page, nil
}

// GetAllLogs fetches one page of the cross-guild activity log
func (c *Client) GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.LogPage, error) {
	var page models.LogPage
	if err := c.get(ctx, "/api/logs", logQueryValues(query), false, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	return &page, nil
}

func logQueryValues(query models.LogsQuery) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("limit", strconv.Itoa(query.Limit))
	if query.Type != "" {
		values.Set("type", query.Type)
	}
	if query.User != "" {
		values.Set("user", query.User)
	}
	return values
}
