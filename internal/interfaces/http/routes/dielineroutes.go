package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
)

type DielineRouteConfig struct {
	DielineHandler *handlers.DielineHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupDielineRoutes(api *gin.RouterGroup, cfg *DielineRouteConfig) {
	dielines := api.Group("/dielines")
	dielines.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dielines.POST("", cfg.DielineHandler.CreateDieline)
		dielines.GET("", cfg.DielineHandler.ListDielines)
		dielines.GET("/:id", cfg.DielineHandler.GetDieline)
		dielines.PUT("/:id", cfg.DielineHandler.UpdateDieline)
		dielines.DELETE("/:id", cfg.DielineHandler.DeleteDieline)
		dielines.GET("/:id/compatible-cartons", cfg.DielineHandler.CompatibleCartons)
	}
}
