package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard/internal/service"
)

// LotteryHandler serves the lottery standings panel
type LotteryHandler struct {
	lottery service.LotteryService
}

// NewLotteryHandler creates a new lottery handler
func NewLotteryHandler(lottery service.LotteryService) *LotteryHandler {
	return &LotteryHandler{lottery: lottery}
}

// GetOverview returns the derived lottery panel view
// GET /api/v1/lottery/overview (authenticated)
func (h *LotteryHandler) GetOverview(c *gin.Context) {
	overview, err := h.lottery.Overview(c.Request.Context())
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
