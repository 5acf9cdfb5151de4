// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/ports"

	"github.com/twmb/franz-go/pkg/kgo"
)

// OrderEventPublisher produces order-changed events with franz-go. Events
// are keyed by order ID, so all events of one order land in one partition
// in publication order.
type OrderEventPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewOrderEventPublisher connects a producer to the given brokers. The
// caller owns the publisher and must Close it on shutdown.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("orders"),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &OrderEventPublisher{
		client: client,
		topic:  topic,
		logger: logger.With("component", "kafka_order_event_publisher"),
	}, nil
}

// PublishOrderChanged produces the event synchronously and returns the
// first produce error, if any.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", p.topic, err)
	}

	p.logger.DebugContext(ctx, "published order changed event",
		"order_id", event.OrderID, "state", event.State, "topic", p.topic)
	return nil
}

// Close flushes buffered records and releases the client.
func (p *OrderEventPublisher) Close() {
	p.client.Close()
}
