package restaurant

import (
	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/storefront/:slug", middleware.RateLimitByIP(10, 20), handler.GetBySlug)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.POST("/restaurants", middleware.RoleMiddleware("ADMIN"), middleware.RateLimitByUser(1, 3), handler.Create)
		dashboard.GET("/restaurants/:restaurantId", handler.Get)
		dashboard.PUT("/restaurants/:restaurantId/theme", middleware.RateLimitByUser(2, 5), handler.UpdateTheme)
	}
}
