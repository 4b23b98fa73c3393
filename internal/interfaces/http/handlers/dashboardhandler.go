package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/application/dashboard/usecases"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// DashboardHandler serves the summary views shown on the landing page.
type DashboardHandler struct {
	statsUC    usecases.GetStatsExecutor
	activityUC usecases.RecentActivityExecutor
	lowStockUC usecases.LowStockExecutor
	logger     logger.Interface
}

func NewDashboardHandler(
	statsUC usecases.GetStatsExecutor,
	activityUC usecases.RecentActivityExecutor,
	lowStockUC usecases.LowStockExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		statsUC:    statsUC,
		activityUC: activityUC,
		lowStockUC: lowStockUC,
		logger:     logger,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RecentActivity handles GET /dashboard/recent-activity
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	result, err := h.activityUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get recent activity", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// LowStock handles GET /dashboard/low-stock
func (h *DashboardHandler) LowStock(c *gin.Context) {
	result, err := h.lowStockUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get low stock cartons", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
