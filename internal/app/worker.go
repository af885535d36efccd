package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/messaging/kafka/producer"
	"github.com/savindushenal/menuvibe-api/internal/outbox"
)

// RunWorker polls the outbox table and relays pending events to kafka until
// interrupted.
func RunWorker(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("worker")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	kafkaWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := outbox.NewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	time.Sleep(1 * time.Second)
	logger.Info("stopped")

	return nil
}
