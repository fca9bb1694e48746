package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "gmao/internal/interfaces/http/handlers/ticket"
	"gmao/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths register before parameterized ones to avoid route
		// conflicts.
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.GET("/user/:user_id", config.TicketHandler.ListTicketsByUser)
		tickets.GET("/technician/:technician_id",
			config.AuthMiddleware.RequireStaff(),
			config.TicketHandler.ListTicketsByTechnician)

		tickets.POST("/:id/assign",
			config.AuthMiddleware.RequireStaff(),
			config.TicketHandler.AssignTicket)
		tickets.GET("/:id/check-assignment",
			config.AuthMiddleware.RequireStaff(),
			config.TicketHandler.CheckAssignment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)

		// PUT and PATCH both land on the same partial update.
		tickets.PUT("/:id",
			config.AuthMiddleware.RequireStaff(),
			config.TicketHandler.UpdateTicket)
		tickets.PATCH("/:id",
			config.AuthMiddleware.RequireStaff(),
			config.TicketHandler.UpdateTicket)
	}
}
