package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billtrack/internal/services"
)

// StatsHandler handles statistics requests.
type StatsHandler struct {
	billService services.BillServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(billService services.BillServicer) *StatsHandler {
	return &StatsHandler{billService: billService}
}

// GetSummary handles retrieving aggregate bill statistics.
// @Summary     Get bill statistics
// @Description Get aggregate statistics over the authenticated user's bills
// @Tags        stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.BillStats "Bill statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/summary [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.billService.GetStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
