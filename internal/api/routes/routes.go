package routes

import (
	"pev-registry-backend/internal/api/handlers"
	"pev-registry-backend/internal/api/middleware"
	"pev-registry-backend/internal/auth"
	"pev-registry-backend/internal/config"
	"pev-registry-backend/internal/repository"
	"pev-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	// Initialize services
	vehicleService := service.NewVehicleService(vehicleRepo, validator)
	transferService := service.NewTransferService(transferRepo, vehicleRepo, userRepo, validator)
	homeService := service.NewHomeService(vehicleRepo)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	transferHandler := handlers.NewTransferHandler(transferService)
	homeHandler := handlers.NewHomeHandler(homeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Landing page: public search for anonymous callers, dashboard when a
	// valid token is presented
	router.GET("/", authMiddleware.OptionalAuth(), homeHandler.Home)

	// Vehicle registry routes
	pevs := router.Group("/pevs")
	pevs.Use(authMiddleware.RequireAuth())
	{
		pevs.GET("", vehicleHandler.ListPevs)
		pevs.POST("", vehicleHandler.CreatePev)
		pevs.GET("/:id", vehicleHandler.GetPev)
		pevs.PUT("/:id", vehicleHandler.UpdatePev)
		pevs.DELETE("/:id", vehicleHandler.DeletePev)
	}

	// Ownership transfer routes
	transfers := router.Group("/pev-transfers")
	transfers.Use(authMiddleware.RequireAuth())
	{
		transfers.GET("", transferHandler.ListTransfers)
		transfers.POST("", transferHandler.InitiateTransfer)
		transfers.GET("/:id", transferHandler.GetTransfer)
		transfers.PATCH("/:id", transferHandler.UpdateTransfer)
		transfers.DELETE("/:id", transferHandler.DeleteTransfer)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
