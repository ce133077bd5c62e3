package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"dashboard/internal/models"
)

// GetItem fetches a single item record by id
func (c *Client) GetItem(ctx context.Context, id int) (*models.Item, error) {
	var item models.Item
	err := c.get(ctx, "/api/items/"+strconv.Itoa(id), nil, false, &item)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: item %d", models.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch item %d: %w", id, err)
	}
	return &item, nil
}

// GetItems fetches one batch of item records. The backend caps a batch
// at 200 ids; the item service is responsible for partitioning.
func (c *Client) GetItems(ctx context.Context, ids []int) ([]*models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	query := url.Values{}
	query.Set("ids", strings.Join(parts, ","))

	var items []*models.Item
	if err := c.get(ctx, "/api/items", query, false, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch item batch: %w", err)
	}
	return items, nil
}

// SearchItems runs a free-text item search, capped by the backend
func (c *Client) SearchItems(ctx context.Context, searchQuery string, limit int) ([]*models.Item, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("limit", strconv.Itoa(limit))

	var items []*models.Item
	if err := c.get(ctx, "/api/items/search", query, false, &items); err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}
