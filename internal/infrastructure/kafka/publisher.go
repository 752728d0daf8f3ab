package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/pkg/events"
	pkgkafka "github.com/iggi84/patients-health-tracker/pkg/kafka"
)

// Compile-time assertion that Publisher implements port.EventPublisher.
var _ port.EventPublisher = (*Publisher)(nil)

// producer is the slice of pkgkafka.Producer the publisher relies on.
type producer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// Publisher implements port.EventPublisher using Kafka.
type Publisher struct {
	producer producer
	logger   *slog.Logger
	topic    string
}

// NewPublisher creates a new Kafka event publisher.
func NewPublisher(producer *pkgkafka.Producer, topic string, logger *slog.Logger) *Publisher {
	return newPublisher(producer, topic, logger)
}

func newPublisher(p producer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: p,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to Kafka, keyed by assessment id so that all
// events of one assessment share a partition.
func (p *Publisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	messages := make([]pkgkafka.Message, 0, len(domainEvents))
	for _, evt := range domainEvents {
		eventType := evt.EventType()

		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
		}

		p.logger.DebugContext(ctx, "publishing event",
			slog.String("event_type", eventType),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(payload)),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     eventType,
				"event_id":       evt.EventID().String(),
				"aggregate_type": evt.AggregateType(),
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}

	return nil
}
