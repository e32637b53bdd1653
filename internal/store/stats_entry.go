package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateStatsEntryParams represents parameters for recording a performance result
type CreateStatsEntryParams struct {
	FundraiserID uuid.UUID
	MetricName   string
	MetricValue  int64
	EnteredBy    uuid.UUID
	Notes        *string
}

const statsEntryColumns = `id, fundraiser_id, metric_name, metric_value, entered_by, notes, created_at`

const sqlCreateStatsEntry = `
INSERT INTO stats_entries (fundraiser_id, metric_name, metric_value, entered_by, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + statsEntryColumns

// CreateStatsEntry records a performance result for a fundraiser
func (s *Store) CreateStatsEntry(ctx context.Context, params CreateStatsEntryParams) (StatsEntry, error) {
	var entry StatsEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateStatsEntry,
		params.FundraiserID, params.MetricName, params.MetricValue, params.EnteredBy, params.Notes)
	if err != nil {
		s.logger.Error(ctx, "failed to create stats entry", err)
		return StatsEntry{}, fmt.Errorf("failed to create stats entry: %w", err)
	}
	return entry, nil
}

const sqlGetStatsEntryByID = `
SELECT ` + statsEntryColumns + `
FROM stats_entries
WHERE id = $1
`

// GetStatsEntryByID fetches a stats entry by its primary key
func (s *Store) GetStatsEntryByID(ctx context.Context, id uuid.UUID) (StatsEntry, error) {
	var entry StatsEntry
	err := s.db.GetContext(ctx, &entry, sqlGetStatsEntryByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StatsEntry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get stats entry", err)
		return StatsEntry{}, fmt.Errorf("failed to get stats entry: %w", err)
	}
	return entry, nil
}

const sqlGetStatsByFundraiser = `
SELECT ` + statsEntryColumns + `
FROM stats_entries
WHERE fundraiser_id = $1
ORDER BY created_at
`

// GetStatsByFundraiser lists stats entries for a fundraiser oldest first
func (s *Store) GetStatsByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]StatsEntry, error) {
	var entries []StatsEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetStatsByFundraiser, fundraiserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get stats by fundraiser", err)
		return nil, fmt.Errorf("failed to get stats by fundraiser: %w", err)
	}
	return entries, nil
}

const sqlGetLatestStatsEntry = `
SELECT ` + statsEntryColumns + `
FROM stats_entries
WHERE fundraiser_id = $1
ORDER BY created_at DESC
LIMIT 1
`

// GetLatestStatsEntry returns the most recently recorded stats entry for a
// fundraiser, the default multiplier source for settlement.
func (s *Store) GetLatestStatsEntry(ctx context.Context, fundraiserID uuid.UUID) (StatsEntry, error) {
	var entry StatsEntry
	err := s.db.GetContext(ctx, &entry, sqlGetLatestStatsEntry, fundraiserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StatsEntry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get latest stats entry", err)
		return StatsEntry{}, fmt.Errorf("failed to get latest stats entry: %w", err)
	}
	return entry, nil
}
