package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateAuditLogParams represents parameters for persisting an audit record
type CreateAuditLogParams struct {
	UserID     *uuid.UUID
	Action     string
	EntityType *string
	EntityID   *string
	Metadata   []byte
}

const sqlCreateAuditLog = `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, action, entity_type, entity_id, metadata, created_at
`

// CreateAuditLog persists one audit record. Called by the audit worker, not
// by request handlers.
func (s *Store) CreateAuditLog(ctx context.Context, params CreateAuditLogParams) (AuditLog, error) {
	var entry AuditLog
	err := s.db.GetContext(ctx, &entry, sqlCreateAuditLog,
		params.UserID, params.Action, params.EntityType, params.EntityID, params.Metadata)
	if err != nil {
		s.logger.Error(ctx, "failed to create audit log", err)
		return AuditLog{}, fmt.Errorf("failed to create audit log: %w", err)
	}
	return entry, nil
}
