package producer

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/savindushenal/menuvibe-api/internal/outbox"
)

func publishEvent(ctx context.Context, writer *kafka.Writer, event outbox.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID.String()),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
