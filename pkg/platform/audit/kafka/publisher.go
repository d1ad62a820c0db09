// Package kafka mirrors audit events onto a Kafka topic so downstream
// consumers (alerting, warehousing) see the same trail as the database.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"attendsync/pkg/platform/audit"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher is a fire-and-forget audit.Sink backed by a Kafka producer.
// Delivery failures are logged, never surfaced: the database store remains
// the source of truth for audit events.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

type eventPayload struct {
	Timestamp string `json:"timestamp"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	RefID     string `json:"ref_id,omitempty"`
}

func (p *Publisher) Append(ctx context.Context, event audit.Event) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	payload, err := json.Marshal(eventPayload{
		Timestamp: ts.Format(time.RFC3339Nano),
		Category:  string(event.Category),
		Message:   event.Message,
		RefID:     event.RefID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Category),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("audit publish failed", "topic", p.topic, "error", err)
		}
	})
	return nil
}

// Close flushes buffered records and releases the producer.
func (p *Publisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush kafka producer: %w", err)
	}
	p.client.Close()
	return nil
}
