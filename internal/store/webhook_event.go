package store

import (
	"context"
	"fmt"
)

const sqlRecordWebhookEvent = `
INSERT INTO webhook_events (event_ref, event_type)
VALUES ($1, $2)
ON CONFLICT (event_ref) DO NOTHING
`

// RecordWebhookEvent claims a gateway event for processing. Returns false
// when the event was already recorded, which tells the caller to skip a
// redelivered event.
func (s *Store) RecordWebhookEvent(ctx context.Context, eventRef, eventType string) (bool, error) {
	result, err := s.db.ExecContext(ctx, sqlRecordWebhookEvent, eventRef, eventType)
	if err != nil {
		s.logger.Error(ctx, "failed to record webhook event", err)
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}
	return rows == 1, nil
}
