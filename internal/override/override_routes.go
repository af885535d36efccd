package override

import (
	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	overrides := r.Group("/restaurants/:restaurantId/overrides")
	overrides.Use(middleware.AuthMiddleware())
	{
		overrides.GET("", handler.List)
		overrides.PUT("/:itemId", handler.Set)
		overrides.DELETE("/:itemId", handler.Clear)
	}
}
