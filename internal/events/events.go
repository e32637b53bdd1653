// Package events publishes and consumes the audit trail. Every mutating
// operation emits an AuditEvent to Kafka; cmd/audit-worker consumes the
// topic and persists rows. Publishing is best-effort from the caller's point
// of view: a Kafka outage must never fail a donation.
package events

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is one audit trail entry on the wire.
type AuditEvent struct {
	ID         string         `json:"id"`
	UserID     *uuid.UUID     `json:"user_id,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

// NewAuditEvent stamps an event with an ID and timestamp.
func NewAuditEvent(userID *uuid.UUID, action, entityType string, entityID uuid.UUID,
	metadata map[string]any) AuditEvent {
	return AuditEvent{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
