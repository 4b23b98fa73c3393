package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
)

// AssignmentRouteConfig holds dependencies for assignment routes.
type AssignmentRouteConfig struct {
	AssignmentHandler *handlers.AssignmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	WriteLimit        gin.HandlerFunc
}

// SetupAssignmentRoutes configures assignment routes.
func SetupAssignmentRoutes(api *gin.RouterGroup, cfg *AssignmentRouteConfig) {
	assignments := api.Group("/assignments")
	assignments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assignments.POST("", withLimit(cfg.WriteLimit, cfg.AssignmentHandler.CreateAssignment)...)
		assignments.GET("", cfg.AssignmentHandler.ListAssignments)
		assignments.GET("/mine", cfg.AssignmentHandler.ListMine)
		assignments.GET("/export", cfg.AssignmentHandler.ExportAssignments)

		assignments.GET("/:id", cfg.AssignmentHandler.GetAssignment)
		assignments.POST("/:id/reverse", cfg.AssignmentHandler.ReverseAssignment)
	}
}
