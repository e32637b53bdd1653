package events

import (
	"context"
	"encoding/json"

	"pledgestack/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Consumer reads audit events from Kafka.
type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for the Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		StartOffset: kafka.FirstOffset,
		// Manual commit: a message is committed only after the handler
		// persisted it.
		CommitInterval: 0,
	})

	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// ConsumeAuditEvents reads events until the context is cancelled. A handler
// error leaves the message uncommitted for redelivery; an unmarshalable
// message is committed and skipped.
func (c *Consumer) ConsumeAuditEvents(ctx context.Context, handler func(context.Context, AuditEvent) error) error {
	c.logger.Info(ctx, "starting audit event consumer")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info(ctx, "stopping audit event consumer")
			return ctx.Err()
		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Error(ctx, "failed to fetch message from kafka", err)
				continue
			}

			var event AuditEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error(ctx, "failed to unmarshal audit event", err)
				c.reader.CommitMessages(ctx, msg)
				continue
			}

			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "audit_action", Value: event.Action},
				observability.Field{Key: "audit_event_id", Value: event.ID},
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)

			if err := handler(msgCtx, event); err != nil {
				c.logger.Error(msgCtx, "failed to process audit event", err)
				continue
			}

			if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
				c.logger.Error(msgCtx, "failed to commit message", err)
			}
		}
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
