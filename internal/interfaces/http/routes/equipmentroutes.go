package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "gmao/internal/interfaces/http/handlers/category"
	equipmenthandlers "gmao/internal/interfaces/http/handlers/equipment"
	"gmao/internal/interfaces/http/middleware"
)

type EquipmentRouteConfig struct {
	EquipmentHandler *equipmenthandlers.EquipmentHandler
	CategoryHandler  *categoryhandlers.CategoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupEquipmentRoutes(api *gin.RouterGroup, config *EquipmentRouteConfig) {
	equipments := api.Group("/equipements")
	equipments.Use(config.AuthMiddleware.RequireAuth())
	{
		equipments.GET("", config.EquipmentHandler.ListEquipment)
		equipments.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.EquipmentHandler.CreateEquipment)

		equipments.GET("/:id", config.EquipmentHandler.GetEquipment)
		equipments.PATCH("/:id/status",
			config.AuthMiddleware.RequireAdmin(),
			config.EquipmentHandler.UpdateStatus)
	}

	categories := api.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.CategoryHandler.CreateCategory)
	}
}
