package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	"github.com/savindushenal/menuvibe-api/internal/menu"
	"github.com/savindushenal/menuvibe-api/internal/messaging/kafka/consumer"
	"github.com/savindushenal/menuvibe-api/internal/override"
)

// RunConsumer clears session carts in response to CLEAR_CART events.
func RunConsumer(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("consumer")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		return err
	}

	overrideService := override.NewService(override.NewRepository(db))
	menuService := menu.NewService(menu.NewRepository(db), overrideService)
	cartService := cart.NewService(cart.Deps{
		Store:     cart.NewRedisStore(redisClient, cart.DefaultTTL),
		Catalog:   menuService,
		Overrides: overrideService,
		Logger:    logger,
	})

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	logger.Info("stopped")

	return nil
}
