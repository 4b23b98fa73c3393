package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
	}
}
