package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard/internal/models"
	"dashboard/internal/service"
)

// GuildHandler serves the guild list, roster and dashboard views
type GuildHandler struct {
	guilds service.GuildService
}

// NewGuildHandler creates a new guild handler
func NewGuildHandler(guilds service.GuildService) *GuildHandler {
	return &GuildHandler{guilds: guilds}
}

// ListGuilds fetches and returns every managed guild
// GET /api/v1/guilds?force_refresh=true
func (h *GuildHandler) ListGuilds(c *gin.Context) {
	forceRefresh := c.Query("force_refresh") == "true"

	guilds, err := h.guilds.FetchGuilds(c.Request.Context(), forceRefresh)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, guilds)
}

// GetGuild returns one guild from the cached snapshot
// GET /api/v1/guilds/:id
func (h *GuildHandler) GetGuild(c *gin.Context) {
	guild, err := h.guilds.Guild(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, guild)
}

// GetMembers returns the sorted, filtered roster of one guild
// GET /api/v1/guilds/:id/members?rank&search
func (h *GuildHandler) GetMembers(c *gin.Context) {
	var query models.MembersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	page, err := h.guilds.SortedMembers(c.Param("id"), query)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetMOTD returns the parsed message of the day of one guild
// GET /api/v1/guilds/:id/motd
func (h *GuildHandler) GetMOTD(c *gin.Context) {
	parsed, err := h.guilds.ParsedMOTD(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, parsed)
}

// GetSummaries returns the dashboard tiles for all cached guilds
// GET /api/v1/guilds/summary
func (h *GuildHandler) GetSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.guilds.Summaries())
}
