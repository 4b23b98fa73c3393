package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(api *gin.RouterGroup, cfg *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/stats", cfg.DashboardHandler.GetStats)
		dashboard.GET("/recent-activity", cfg.DashboardHandler.RecentActivity)
		dashboard.GET("/low-stock", cfg.DashboardHandler.LowStock)
	}
}
