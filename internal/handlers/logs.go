package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard/internal/models"
	"dashboard/internal/service"
)

// LogsHandler serves the rendered activity log views
type LogsHandler struct {
	logs service.LogService
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(logs service.LogService) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// GetGuildLogs returns one rendered page of a single guild's log
// GET /api/v1/guilds/:id/logs?page&limit&type&user
func (h *LogsHandler) GetGuildLogs(c *gin.Context) {
	var query models.LogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	page, err := h.logs.GetGuildLogs(c.Request.Context(), c.Param("id"), query)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetAllLogs returns one rendered page of the cross-guild log
// GET /api/v1/logs?page&limit&type&user
func (h *LogsHandler) GetAllLogs(c *gin.Context) {
	var query models.LogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	page, err := h.logs.GetAllLogs(c.Request.Context(), query)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, page)
}
