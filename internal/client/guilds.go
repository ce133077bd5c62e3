package client

import (
	"context"
	"fmt"
	"net/url"

	"dashboard/internal/models"
)

// GetGuilds fetches every managed guild with roster and ranks. With
// forceRefresh the backend bypasses its own cache and re-reads the
// game API.
func (c *Client) GetGuilds(ctx context.Context, forceRefresh bool) ([]*models.Guild, error) {
	query := url.Values{}
	if forceRefresh {
		query.Set("force_refresh", "true")
	}

	var guilds []*models.Guild
	if err := c.get(ctx, "/api/guilds", query, false, &guilds); err != nil {
		return nil, fmt.Errorf("failed to fetch guilds: %w", err)
	}
	return guilds, nil
}
