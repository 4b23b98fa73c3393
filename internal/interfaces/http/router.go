package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
	"github.com/cartonworks/stockline/internal/interfaces/http/routes"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	utils.UseJSONFieldNames()

	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.AccessLog(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	c.engine.GET("/version", c.hdlrs.healthHandler.Version)

	var writeLimit gin.HandlerFunc
	if c.writeLimiter != nil {
		writeLimit = c.writeLimiter.Limit()
	}

	api := c.engine.Group("/api")

	routes.SetupDielineRoutes(api, &routes.DielineRouteConfig{
		DielineHandler: c.hdlrs.dielineHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCartonRoutes(api, &routes.CartonRouteConfig{
		CartonHandler:  c.hdlrs.cartonHandler,
		AuthMiddleware: c.authMiddleware,
		WriteLimit:     writeLimit,
	})
	routes.SetupAssignmentRoutes(api, &routes.AssignmentRouteConfig{
		AssignmentHandler: c.hdlrs.assignmentHandler,
		AuthMiddleware:    c.authMiddleware,
		WriteLimit:        writeLimit,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: c.hdlrs.dashboardHandler,
		AuthMiddleware:   c.authMiddleware,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
