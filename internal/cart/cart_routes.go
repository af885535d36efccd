package cart

import (
	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/restaurants/:restaurantId/cart")
	carts.Use(middleware.RequireSession())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		carts.POST("/lines", handler.AddItem)

		lines := carts.Group("/lines/:lineKey")
		{
			lines.PATCH("", handler.UpdateQuantity)
			lines.DELETE("", handler.RemoveLine)
		}
	}
}
