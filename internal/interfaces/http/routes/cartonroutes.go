package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
)

// CartonRouteConfig holds dependencies for carton routes.
type CartonRouteConfig struct {
	CartonHandler  *handlers.CartonHandler
	AuthMiddleware *middleware.AuthMiddleware
	// WriteLimit is nil when rate limiting is disabled.
	WriteLimit gin.HandlerFunc
}

// SetupCartonRoutes configures carton routes.
func SetupCartonRoutes(api *gin.RouterGroup, cfg *CartonRouteConfig) {
	cartons := api.Group("/cartons")
	cartons.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cartons.POST("", cfg.CartonHandler.CreateCarton)
		cartons.GET("", cfg.CartonHandler.ListCartons)

		// Static paths are registered before /:id.
		cartons.GET("/compatible", cfg.CartonHandler.CompatibleCartons)
		cartons.GET("/export", cfg.CartonHandler.ExportCartons)
		cartons.POST("/import", withLimit(cfg.WriteLimit, cfg.CartonHandler.ImportCartons)...)

		cartons.GET("/:id", cfg.CartonHandler.GetCarton)
		cartons.PUT("/:id", cfg.CartonHandler.UpdateCarton)
		cartons.DELETE("/:id", cfg.CartonHandler.DeleteCarton)
		cartons.GET("/:id/assignments", cfg.CartonHandler.UsageHistory)
	}
}

func withLimit(limit gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if limit == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{limit, h}
}
