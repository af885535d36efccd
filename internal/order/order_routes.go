package order

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/savindushenal/menuvibe-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	orders := r.Group("/restaurants/:restaurantId/orders")
	orders.Use(middleware.RequireSession())
	orders.Use(middleware.RateLimitByUser(5, 10))
	{
		// Checkout is the one route where a duplicate request means a
		// duplicate order, so it gets the idempotency key check on top of a
		// tight rate limit.
		orders.POST("",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		orders.GET("", handler.List)
		orders.GET("/:orderId", handler.Detail)

		orders.PATCH("/:orderId/cancel",
			middleware.RateLimitByUser(0.5, 2),
			handler.Cancel,
		)
	}

	dashboard := r.Group("/dashboard/restaurants/:restaurantId/orders")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.RateLimitByIP(10, 20))
	{
		dashboard.GET("", handler.ListByRestaurant)
		dashboard.GET("/:orderId", handler.DashboardDetail)

		dashboard.PATCH("/:orderId/status",
			middleware.RateLimitByUser(2, 5),
			handler.UpdateStatus,
		)
	}
}
