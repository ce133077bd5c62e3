package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard/internal/models"
	"dashboard/internal/service"
)

// ItemsHandler serves item lookups and search
type ItemsHandler struct {
	items service.ItemService
}

// NewItemsHandler creates a new items handler
func NewItemsHandler(items service.ItemService) *ItemsHandler {
	return &ItemsHandler{items: items}
}

// GetItem returns one item record by id
// GET /api/v1/items/:id
func (h *ItemsHandler) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid item id: %s", c.Param("id")))
		return
	}

	item, err := h.items.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetItems returns the records for a comma-separated id list
// GET /api/v1/items?ids=1,2,3
func (h *ItemsHandler) GetItems(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		respondError(c, http.StatusBadRequest, fmt.Errorf("ids query parameter is required"))
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid item id: %s", part))
			return
		}
		ids = append(ids, id)
	}

	items, err := h.items.GetItems(c.Request.Context(), ids)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// SearchItems runs a free-text item search
// GET /api/v1/items/search?query=...
func (h *ItemsHandler) SearchItems(c *gin.Context) {
	var query models.ItemSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	items, err := h.items.SearchItems(c.Request.Context(), query.Query)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, items)
}
