package menu

import (
	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Storefront: read-only, anonymous.
	r.GET("/restaurants/:restaurantId/menu", handler.ListPublic)

	// Dashboard: owner-managed catalog.
	dashboard := r.Group("/dashboard/restaurants/:restaurantId")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/items", handler.List)
		dashboard.POST("/items", handler.Create)
	}

	items := r.Group("/dashboard/items/:itemId")
	items.Use(middleware.AuthMiddleware())
	{
		items.PATCH("", handler.Update)
		items.PATCH("/availability", handler.SetAvailability)
		items.DELETE("", handler.Delete)
	}
}
