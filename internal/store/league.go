package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateLeagueParams represents parameters for creating a league
type CreateLeagueParams struct {
	Name              string
	Description       *string
	DefaultFeePercent int
}

const sqlCreateLeague = `
INSERT INTO leagues (name, description, default_fee_percent)
VALUES ($1, $2, $3)
RETURNING id, name, description, default_fee_percent, created_at, updated_at
`

// CreateLeague creates a new league
func (s *Store) CreateLeague(ctx context.Context, params CreateLeagueParams) (League, error) {
	var league League
	err := s.db.GetContext(ctx, &league, sqlCreateLeague,
		params.Name, params.Description, params.DefaultFeePercent)
	if err != nil {
		s.logger.Error(ctx, "failed to create league", err)
		return League{}, fmt.Errorf("failed to create league: %w", err)
	}
	return league, nil
}

const sqlGetLeagueByID = `
SELECT id, name, description, default_fee_percent, created_at, updated_at
FROM leagues
WHERE id = $1
`

// GetLeagueByID fetches a league by its primary key
func (s *Store) GetLeagueByID(ctx context.Context, id uuid.UUID) (League, error) {
	var league League
	err := s.db.GetContext(ctx, &league, sqlGetLeagueByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return League{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get league", err)
		return League{}, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

const sqlListLeagues = `
SELECT id, name, description, default_fee_percent, created_at, updated_at
FROM leagues
ORDER BY created_at DESC
`

// ListLeagues returns all leagues, newest first
func (s *Store) ListLeagues(ctx context.Context) ([]League, error) {
	var leagues []League
	err := s.db.SelectContext(ctx, &leagues, sqlListLeagues)
	if err != nil {
		s.logger.Error(ctx, "failed to list leagues", err)
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}
