package route

import (
	"github.com/driversed/driversed-api/internal/adapter/api/controller"
	"github.com/driversed/driversed-api/internal/domain/user"
	"github.com/driversed/driversed-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupCertificateRoutes configures the routes of the certificate module.
// The verification view is public; everything else requires a signed-in
// user, and deletion is restricted to admins.
func SetupCertificateRoutes(router *gin.RouterGroup, certificateController *controller.CertificateController) {
	// Public verification link, reachable without signing in
	router.GET("/certificates/verify/:id", certificateController.Verify)

	certificateRouter := router.Group("/certificates")
	certificateRouter.Use(auth.JWTAuthMiddleware())
	{
		certificateRouter.GET("", certificateController.List)
		certificateRouter.GET("/:id", certificateController.Get)
		certificateRouter.POST("", certificateController.Create)
		certificateRouter.PUT("/:id", certificateController.Update)
		certificateRouter.DELETE("/:id", auth.RoleAuthMiddleware(string(user.RoleAdmin)), certificateController.Delete)

		certificateRouter.POST("/:id/revoke", certificateController.Revoke)
		certificateRouter.POST("/:id/reinstate", certificateController.Reinstate)
	}
}
