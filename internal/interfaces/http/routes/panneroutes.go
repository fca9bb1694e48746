package routes

import (
	"github.com/gin-gonic/gin"

	interventionhandlers "gmao/internal/interfaces/http/handlers/intervention"
	pannehandlers "gmao/internal/interfaces/http/handlers/panne"
	"gmao/internal/interfaces/http/middleware"
)

type PanneRouteConfig struct {
	PanneHandler        *pannehandlers.PanneHandler
	InterventionHandler *interventionhandlers.InterventionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupPanneRoutes(api *gin.RouterGroup, config *PanneRouteConfig) {
	pannes := api.Group("/pannes")
	pannes.Use(config.AuthMiddleware.RequireAuth())
	{
		pannes.POST("", config.PanneHandler.ReportPanne)
		pannes.GET("",
			config.AuthMiddleware.RequireStaff(),
			config.PanneHandler.ListPannes)
		pannes.POST("/:id/resolve",
			config.AuthMiddleware.RequireStaff(),
			config.PanneHandler.ResolvePanne)
	}

	interventions := api.Group("/interventions")
	interventions.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireStaff())
	{
		interventions.POST("", config.InterventionHandler.PlanIntervention)
		interventions.GET("", config.InterventionHandler.ListInterventions)
	}
}
