package routes

import (
	"context"
	"log"

	_ "nelly_tech/docs" // swag generated
	"nelly_tech/internal/adapter/http/handlers"
	"nelly_tech/internal/adapter/http/middleware"
	"nelly_tech/internal/adapter/persistence/repository"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/infrastructure/config"
	"nelly_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run(cfg *config.Config) {
	ctx := context.Background()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
	defer deps.Close()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, deps)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, deps *dependencies) {
	quoteRepo := repository.NewQuoteRequestRepository(deps.store)
	projectRepo := repository.NewProjectRepository(deps.store)

	throttles := intake.NewSessionThrottles(cfg.SubmitInterval, nil)
	quoteUseCase := usecase.NewQuoteRequestUseCase(quoteRepo, throttles, cfg.StatusTransitions, cfg.WhatsAppNumber)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, deps.images, cfg.StatusTransitions)
	dashboardUseCase := usecase.NewDashboardUseCase(projectRepo, quoteRepo, cfg.Location)
	authUseCase := usecase.NewAuthUseCase(deps.identity)

	h := routeHandlers{
		quotes:    handlers.NewQuoteRequestHandler(quoteUseCase, cfg.Location),
		projects:  handlers.NewProjectHandler(projectUseCase),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		auth:      handlers.NewAuthHandler(authUseCase),
		settings:  handlers.NewSettingsHandler(cfg.StatusTransitions, throttles.Interval(), cfg.WhatsAppNumber),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addAdminRoutes(v1, h, middleware.RequireAdmin(authUseCase))
}

func setMiddlewares(cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
}
