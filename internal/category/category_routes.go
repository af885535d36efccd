package category

import (
	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/restaurants/:restaurantId/categories",
		middleware.RateLimitByIP(10, 20),
		handler.List,
	)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		mutationLimit := middleware.RateLimitByUser(1, 3)

		dashboard.POST("/restaurants/:restaurantId/categories", mutationLimit, handler.Create)
		dashboard.PATCH("/categories/:categoryId", mutationLimit, handler.Rename)
		dashboard.DELETE("/categories/:categoryId", mutationLimit, handler.Delete)
	}
}
