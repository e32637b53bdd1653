package events

import (
	"context"
	"encoding/json"
	"fmt"

	"pledgestack/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Publisher is the audit-emission surface handed to processors.
type Publisher interface {
	PublishAudit(ctx context.Context, event AuditEvent) error
}

// Producer publishes audit events to Kafka.
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for the Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:        kafka.TCP(config.Brokers...),
		Topic:       config.Topic,
		Balancer:    &kafka.LeastBytes{},
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// PublishAudit publishes one audit event. Messages are keyed by entity ID so
// events about the same entity stay ordered within a partition.
func (p *Producer) PublishAudit(ctx context.Context, event AuditEvent) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "audit_action", Value: event.Action},
		observability.Field{Key: "audit_event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal audit event", err)
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID.String()),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(event.Action)},
			{Key: "entity_type", Value: []byte(event.EntityType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write audit event to kafka", err)
		return fmt.Errorf("failed to write audit event to kafka: %w", err)
	}
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
