package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/driversed/driversed-api/internal/adapter/api/controller"
	"github.com/driversed/driversed-api/internal/adapter/api/route"
	"github.com/driversed/driversed-api/internal/adapter/repository"
	"github.com/driversed/driversed-api/internal/config"
	"github.com/driversed/driversed-api/internal/infrastructure/database"
	"github.com/driversed/driversed-api/pkg/logger"

	_ "github.com/driversed/driversed-api/docs"
)

// App holds the application and its dependencies
type App struct {
	router                *gin.Engine
	db                    *pgxpool.Pool
	config                *config.Config
	logger                logger.Logger
	certificateController *controller.CertificateController
	dashboardController   *controller.DashboardController
	authController        *controller.AuthController
}

// NewApp wires the application together
func NewApp() (*App, error) {
	cfg := config.Load()
	appLogger := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	certificateRepo := repository.NewCertificateRepository(db)
	userRepo := repository.NewUserRepository(db)

	certificateController := controller.NewCertificateController(certificateRepo, cfg, appLogger)
	dashboardController := controller.NewDashboardController(certificateRepo, cfg, appLogger)
	authController := controller.NewAuthController(userRepo, appLogger)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	return &App{
		router:                router,
		db:                    db,
		config:                cfg,
		logger:                appLogger,
		certificateController: certificateController,
		dashboardController:   dashboardController,
		authController:        authController,
	}, nil
}

// SetupRoutes configures the application routes
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, a.authController)
	route.SetupCertificateRoutes(api, a.certificateController)
	route.SetupDashboardRoutes(api, a.dashboardController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server
func (a *App) Start() error {
	a.logger.Info("starting server", "port", a.config.Port)
	return a.router.Run(":" + a.config.Port)
}

// Close releases the application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
