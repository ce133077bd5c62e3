package client

import (
	"context"
	"fmt"

	"dashboard/internal/models"
)

// GetLotteryStats fetches the current lottery standings. Requires an
// authenticated session.
func (c *Client) GetLotteryStats(ctx context.Context) (*models.LotteryStats, error) {
	var stats models.LotteryStats
	if err := c.get(ctx, "/api/lottery/stats", nil, true, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch lottery stats: %w", err)
	}
	return &stats, nil
}
