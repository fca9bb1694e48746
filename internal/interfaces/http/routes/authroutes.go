package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "gmao/internal/interfaces/http/handlers/user"
	"gmao/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.UserHandler.Login)
		auth.POST("/change-password",
			config.AuthMiddleware.RequireAuth(),
			config.UserHandler.ChangePassword)
	}

	users := api.Group("/utilisateurs")
	users.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.POST("/:id/deactivate", config.UserHandler.DeactivateUser)
	}
}
