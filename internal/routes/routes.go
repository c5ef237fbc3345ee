package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riskscreen_backend/internal/auth"
	"riskscreen_backend/internal/handlers"
	"riskscreen_backend/internal/middleware"
	"riskscreen_backend/internal/models"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenService,
) {
	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authRequired)
		appHandlers.UserHandler.RegisterRoutes(api, authRequired, adminOnly)
		appHandlers.ProfileHandler.RegisterRoutes(api, authRequired)
		appHandlers.CategoryHandler.RegisterRoutes(api, authRequired, adminOnly)
		appHandlers.DashboardHandler.RegisterRoutes(api, authRequired, adminOnly)
	}
}
