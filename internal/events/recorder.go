package events

import (
	"context"
	"encoding/json"
	"fmt"

	"pledgestack/internal/observability"
	"pledgestack/internal/store"
)

// AuditLogStore persists consumed audit events.
type AuditLogStore interface {
	CreateAuditLog(ctx context.Context, params store.CreateAuditLogParams) (store.AuditLog, error)
}

// Recorder persists audit events consumed from Kafka.
type Recorder struct {
	store  AuditLogStore
	logger *observability.Logger
}

func NewRecorder(store AuditLogStore, logger *observability.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger,
	}
}

// Record writes one audit event to the audit_logs table.
func (r *Recorder) Record(ctx context.Context, event AuditEvent) error {
	var metadata []byte
	if event.Metadata != nil {
		var err error
		metadata, err = json.Marshal(event.Metadata)
		if err != nil {
			r.logger.Error(ctx, "failed to marshal audit metadata", err)
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	entityType := event.EntityType
	entityID := event.EntityID.String()
	if _, err := r.store.CreateAuditLog(ctx, store.CreateAuditLogParams{
		UserID:     event.UserID,
		Action:     event.Action,
		EntityType: &entityType,
		EntityID:   &entityID,
		Metadata:   metadata,
	}); err != nil {
		return err
	}
	return nil
}
