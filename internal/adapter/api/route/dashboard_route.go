package route

import (
	"github.com/driversed/driversed-api/internal/adapter/api/controller"
	"github.com/driversed/driversed-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes configures the dashboard routes
func SetupDashboardRoutes(router *gin.RouterGroup, dashboardController *controller.DashboardController) {
	dashboardRouter := router.Group("/dashboard")
	dashboardRouter.Use(auth.JWTAuthMiddleware())
	{
		dashboardRouter.GET("/stats", dashboardController.Stats)
	}
}
