package route

import (
	"github.com/driversed/driversed-api/internal/adapter/api/controller"
	"github.com/driversed/driversed-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures the authentication routes. Sign-in and token
// renewal are public; the current-user route requires a token.
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
