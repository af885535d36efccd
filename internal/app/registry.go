package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	"github.com/savindushenal/menuvibe-api/internal/category"
	"github.com/savindushenal/menuvibe-api/internal/menu"
	"github.com/savindushenal/menuvibe-api/internal/order"
	"github.com/savindushenal/menuvibe-api/internal/outbox"
	"github.com/savindushenal/menuvibe-api/internal/override"
	"github.com/savindushenal/menuvibe-api/internal/restaurant"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	restaurantRepo := restaurant.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	menuRepo := menu.NewRepository(db)
	overrideRepo := override.NewRepository(db)
	orderRepo := order.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Services ---
	restaurantService := restaurant.NewService(restaurantRepo)
	categoryService := category.NewService(categoryRepo)
	overrideService := override.NewService(overrideRepo)
	menuService := menu.NewService(menuRepo, overrideService)
	cartService := cart.NewService(cart.Deps{
		Store:     cart.NewRedisStore(rdb, cart.DefaultTTL),
		Catalog:   menuService,
		Overrides: overrideService,
		Logger:    logger,
	})
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		CartSvc:    cartService,
		Logger:     logger,
	})

	// --- Handlers ---
	restaurantHandler := restaurant.NewHandler(restaurantService)
	categoryHandler := category.NewHandler(categoryService)
	menuHandler := menu.NewHandler(menuService)
	overrideHandler := override.NewHandler(overrideService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		restaurant.RegisterRoutes(api, restaurantHandler)
		category.RegisterRoutes(api, categoryHandler)
		menu.RegisterRoutes(api, menuHandler)
		override.RegisterRoutes(api, overrideHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler, rdb)
	}
}
