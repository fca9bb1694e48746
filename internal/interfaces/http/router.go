package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryusecases "gmao/internal/application/category/usecases"
	equipmentusecases "gmao/internal/application/equipment/usecases"
	interventionusecases "gmao/internal/application/intervention/usecases"
	appnotification "gmao/internal/application/notification"
	notificationusecases "gmao/internal/application/notification/usecases"
	panneusecases "gmao/internal/application/panne/usecases"
	ticketusecases "gmao/internal/application/ticket/usecases"
	userusecases "gmao/internal/application/user/usecases"
	"gmao/internal/infrastructure/auth"
	"gmao/internal/infrastructure/config"
	"gmao/internal/infrastructure/repository"
	categoryhandlers "gmao/internal/interfaces/http/handlers/category"
	equipmenthandlers "gmao/internal/interfaces/http/handlers/equipment"
	interventionhandlers "gmao/internal/interfaces/http/handlers/intervention"
	notificationhandlers "gmao/internal/interfaces/http/handlers/notification"
	pannehandlers "gmao/internal/interfaces/http/handlers/panne"
	tickethandlers "gmao/internal/interfaces/http/handlers/ticket"
	userhandlers "gmao/internal/interfaces/http/handlers/user"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/interfaces/http/routes"
	shareddb "gmao/internal/shared/db"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/version"
)

// Router assembles the HTTP surface: repositories, use cases, handlers and
// route groups.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	ticketRepo := repository.NewTicketRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	panneRepo := repository.NewPanneRepository(db)
	interventionRepo := repository.NewInterventionRepository(db)

	// Services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	dispatcher := appnotification.NewDispatcher(notificationRepo, log.Named("dispatcher"))
	txManager := shareddb.NewTransactionManager(db)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	// Ticket handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, equipmentRepo, categoryRepo, userRepo, log),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, dispatcher, txManager, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, userRepo, equipmentRepo, dispatcher, txManager, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewCheckAssignmentUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
	)

	// Notification handlers
	notificationHandler := notificationhandlers.NewNotificationHandler(
		notificationusecases.NewListNotificationsUseCase(notificationRepo, log),
		notificationusecases.NewCountUnreadUseCase(notificationRepo, log),
		notificationusecases.NewMarkAsReadUseCase(notificationRepo, log),
		notificationusecases.NewMarkAllAsReadUseCase(notificationRepo, log),
		notificationusecases.NewDeleteNotificationUseCase(notificationRepo, log),
		notificationusecases.NewClearNotificationsUseCase(notificationRepo, log),
	)

	// User handlers
	userHandler := userhandlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewDeactivateUserUseCase(userRepo, log),
		userusecases.NewAuthenticateUserUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewChangePasswordUseCase(userRepo, hasher, log),
		cfg.Auth.Password,
	)

	// Equipment and category handlers
	equipmentHandler := equipmenthandlers.NewEquipmentHandler(
		equipmentusecases.NewCreateEquipmentUseCase(equipmentRepo, log),
		equipmentusecases.NewGetEquipmentUseCase(equipmentRepo, log),
		equipmentusecases.NewListEquipmentUseCase(equipmentRepo, log),
		equipmentusecases.NewUpdateEquipmentStatusUseCase(equipmentRepo, log),
	)
	categoryHandler := categoryhandlers.NewCategoryHandler(
		categoryusecases.NewCreateCategoryUseCase(categoryRepo, log),
		categoryusecases.NewListCategoriesUseCase(categoryRepo, log),
	)

	// Panne and intervention handlers
	panneHandler := pannehandlers.NewPanneHandler(
		panneusecases.NewReportPanneUseCase(panneRepo, equipmentRepo, userRepo, dispatcher, log),
		panneusecases.NewResolvePanneUseCase(panneRepo, equipmentRepo, dispatcher, log),
		panneusecases.NewListPannesUseCase(panneRepo, log),
	)
	interventionHandler := interventionhandlers.NewInterventionHandler(
		interventionusecases.NewPlanInterventionUseCase(interventionRepo, equipmentRepo, userRepo, dispatcher, log),
		interventionusecases.NewListInterventionsUseCase(interventionRepo, log),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.String()})
	})

	api := engine.Group("/api/v1")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupEquipmentRoutes(api, &routes.EquipmentRouteConfig{
		EquipmentHandler: equipmentHandler,
		CategoryHandler:  categoryHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupPanneRoutes(api, &routes.PanneRouteConfig{
		PanneHandler:        panneHandler,
		InterventionHandler: interventionHandler,
		AuthMiddleware:      authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
