package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "gmao/internal/interfaces/http/handlers/notification"
	"gmao/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.CountUnread)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.DELETE("", config.NotificationHandler.ClearNotifications)

		notifications.POST("/:id/read", config.NotificationHandler.MarkAsRead)
		notifications.DELETE("/:id", config.NotificationHandler.DeleteNotification)
	}
}
