package notifications

import (
	"context"
	"fmt"

	"pledgestack/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client enqueues notification jobs.
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new notification client.
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueDonorReceipt enqueues a receipt email for a charged pledge.
func (c *Client) EnqueueDonorReceipt(ctx context.Context, pledgeID uuid.UUID) error {
	task, err := NewDonorReceiptTask(DonorReceiptPayload{PledgeID: pledgeID})
	if err != nil {
		c.logger.Error(ctx, "failed to create donor receipt task", err)
		return fmt.Errorf("failed to create donor receipt task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue donor receipt task", err)
		return fmt.Errorf("failed to enqueue donor receipt task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued donor receipt task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueDeclineNotice enqueues a decline notice for a failed charge.
func (c *Client) EnqueueDeclineNotice(ctx context.Context, pledgeID uuid.UUID) error {
	task, err := NewDeclineNoticeTask(DeclineNoticePayload{PledgeID: pledgeID})
	if err != nil {
		c.logger.Error(ctx, "failed to create decline notice task", err)
		return fmt.Errorf("failed to create decline notice task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue decline notice task", err)
		return fmt.Errorf("failed to enqueue decline notice task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued decline notice task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
