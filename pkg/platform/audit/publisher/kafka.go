// Package publisher provides audit.Event sinks. The Kafka publisher is
// the production sink; the in-memory publisher serves tests and broker-less
// deployments.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"conforma/pkg/platform/audit"
)

// DefaultTopic is the audit event topic. Versioned so the payload schema
// can evolve without breaking consumers.
const DefaultTopic = "conforma.audit.v1"

// Kafka publishes audit events to a Kafka topic, keyed by session ID so
// all events for one session land on the same partition in order.
type Kafka struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// KafkaOption configures the Kafka publisher.
type KafkaOption func(*Kafka)

// WithTopic overrides the destination topic.
func WithTopic(topic string) KafkaOption {
	return func(p *Kafka) {
		p.topic = topic
	}
}

// WithLogger sets a logger for produce failures.
func WithLogger(logger *slog.Logger) KafkaOption {
	return func(p *Kafka) {
		p.logger = logger
	}
}

// NewKafka builds a Kafka publisher connected to the given seed brokers.
func NewKafka(brokers []string, opts ...KafkaOption) (*Kafka, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}

	p := &Kafka{topic: DefaultTopic}
	for _, opt := range opts {
		opt(p)
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(p.topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	p.client = client

	return p, nil
}

// Emit publishes one audit event. The write is synchronous so callers can
// decide whether a failed emit should fail their operation; this service
// treats audit emission as fail-open (see ports.LogAudit).
func (p *Kafka) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.CategoryFor(event.Action)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.SessionID.String()),
		Value: payload,
		Topic: p.topic,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "audit event produce failed",
				"action", event.Action,
				"session_id", event.SessionID,
				"error", err,
			)
		}
		return fmt.Errorf("produce audit event: %w", err)
	}

	return nil
}

// Close flushes pending records and releases the client.
func (p *Kafka) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		p.client.Close()
		return fmt.Errorf("flush kafka producer: %w", err)
	}
	p.client.Close()
	return nil
}
