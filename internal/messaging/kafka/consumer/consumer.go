package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/cart"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("consumer")

	logger.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("failed to fetch message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == "CLEAR_CART" {
			if err := handleClearCart(ctx, msg.Value, cartService, logger); err != nil {
				logger.Error("failed to handle CLEAR_CART", zap.Error(err))
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("failed to commit message", zap.Error(err))
		}
	}
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
