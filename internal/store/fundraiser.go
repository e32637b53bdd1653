package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateFundraiserParams represents parameters for creating a fundraiser
type CreateFundraiserParams struct {
	TeamID      uuid.UUID
	Title       string
	Description *string
	Kind        FundraiserKind
	GoalAmount  *int64
	Performance *PerformanceConfig
}

// UpdateFundraiserParams updates mutable fundraiser fields. Nil fields are
// left unchanged.
type UpdateFundraiserParams struct {
	Title       *string
	Description *string
	Status      *FundraiserStatus
	GoalAmount  *int64
	Performance *PerformanceConfig
}

const fundraiserColumns = `id, team_id, title, description, kind, status, goal_amount,
       performance_config, total_pledged, total_charged, published_at, completed_at,
       created_at, updated_at`

const sqlCreateFundraiser = `
INSERT INTO fundraisers (team_id, title, description, kind, goal_amount, performance_config)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + fundraiserColumns

// CreateFundraiser creates a fundraiser in draft status
func (s *Store) CreateFundraiser(ctx context.Context, params CreateFundraiserParams) (Fundraiser, error) {
	var fundraiser Fundraiser
	err := s.db.GetContext(ctx, &fundraiser, sqlCreateFundraiser,
		params.TeamID, params.Title, params.Description, params.Kind,
		params.GoalAmount, params.Performance)
	if err != nil {
		s.logger.Error(ctx, "failed to create fundraiser", err)
		return Fundraiser{}, fmt.Errorf("failed to create fundraiser: %w", err)
	}
	return fundraiser, nil
}

const sqlGetFundraiserByID = `
SELECT ` + fundraiserColumns + `
FROM fundraisers
WHERE id = $1
`

// GetFundraiserByID fetches a fundraiser by its primary key
func (s *Store) GetFundraiserByID(ctx context.Context, id uuid.UUID) (Fundraiser, error) {
	var fundraiser Fundraiser
	err := s.db.GetContext(ctx, &fundraiser, sqlGetFundraiserByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fundraiser{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get fundraiser", err)
		return Fundraiser{}, fmt.Errorf("failed to get fundraiser: %w", err)
	}
	return fundraiser, nil
}

const sqlGetFundraisersByTeam = `
SELECT ` + fundraiserColumns + `
FROM fundraisers
WHERE team_id = $1
ORDER BY created_at DESC
`

// GetFundraisersByTeam lists a team's fundraisers, newest first
func (s *Store) GetFundraisersByTeam(ctx context.Context, teamID uuid.UUID) ([]Fundraiser, error) {
	var fundraisers []Fundraiser
	err := s.db.SelectContext(ctx, &fundraisers, sqlGetFundraisersByTeam, teamID)
	if err != nil {
		s.logger.Error(ctx, "failed to get fundraisers by team", err)
		return nil, fmt.Errorf("failed to get fundraisers by team: %w", err)
	}
	return fundraisers, nil
}

const sqlUpdateFundraiser = `
UPDATE fundraisers
SET title              = COALESCE($2, title),
    description        = COALESCE($3, description),
    status             = COALESCE($4, status),
    goal_amount        = COALESCE($5, goal_amount),
    performance_config = COALESCE($6, performance_config),
    updated_at         = NOW()
WHERE id = $1
RETURNING ` + fundraiserColumns

// UpdateFundraiser updates mutable fields of a fundraiser
func (s *Store) UpdateFundraiser(ctx context.Context, id uuid.UUID,
	params UpdateFundraiserParams) (Fundraiser, error) {
	var fundraiser Fundraiser
	err := s.db.GetContext(ctx, &fundraiser, sqlUpdateFundraiser, id,
		params.Title, params.Description, params.Status, params.GoalAmount, params.Performance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fundraiser{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update fundraiser", err)
		return Fundraiser{}, fmt.Errorf("failed to update fundraiser: %w", err)
	}
	return fundraiser, nil
}

const sqlPublishFundraiser = `
UPDATE fundraisers
SET status = 'active', published_at = NOW(), updated_at = NOW()
WHERE id = $1 AND status = 'draft'
RETURNING ` + fundraiserColumns

// PublishFundraiser transitions a draft fundraiser to active. Returns
// ErrNotFound when the fundraiser does not exist or is not a draft.
func (s *Store) PublishFundraiser(ctx context.Context, id uuid.UUID) (Fundraiser, error) {
	var fundraiser Fundraiser
	err := s.db.GetContext(ctx, &fundraiser, sqlPublishFundraiser, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fundraiser{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to publish fundraiser", err)
		return Fundraiser{}, fmt.Errorf("failed to publish fundraiser: %w", err)
	}
	return fundraiser, nil
}

const sqlIncrementPledged = `
UPDATE fundraisers
SET total_pledged = total_pledged + $2, updated_at = NOW()
WHERE id = $1
`

// IncrementPledged adds delta cents to the fundraiser's pledged aggregate
func (s *Store) IncrementPledged(ctx context.Context, id uuid.UUID, delta int64) error {
	result, err := s.db.ExecContext(ctx, sqlIncrementPledged, id, delta)
	if err != nil {
		s.logger.Error(ctx, "failed to increment pledged total", err)
		return fmt.Errorf("failed to increment pledged total: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment pledged total: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlSumChargedPledges = `
SELECT COALESCE(SUM(final_amount), 0)
FROM pledges
WHERE fundraiser_id = $1 AND status = 'charged'
`

// SumChargedPledges recomputes the charged aggregate from pledge rows
func (s *Store) SumChargedPledges(ctx context.Context, fundraiserID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.GetContext(ctx, &total, sqlSumChargedPledges, fundraiserID)
	if err != nil {
		s.logger.Error(ctx, "failed to sum charged pledges", err)
		return 0, fmt.Errorf("failed to sum charged pledges: %w", err)
	}
	return total, nil
}

const sqlSetFundraiserTotalCharged = `
UPDATE fundraisers
SET total_charged = $2, updated_at = NOW()
WHERE id = $1
`

// SetFundraiserTotalCharged stores the recomputed charged total without
// touching status. Used when a settlement batch leaves retry-eligible
// pledges behind and the fundraiser must stay open.
func (s *Store) SetFundraiserTotalCharged(ctx context.Context, id uuid.UUID, totalCharged int64) error {
	result, err := s.db.ExecContext(ctx, sqlSetFundraiserTotalCharged, id, totalCharged)
	if err != nil {
		s.logger.Error(ctx, "failed to set charged total", err)
		return fmt.Errorf("failed to set charged total: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set charged total: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCompleteFundraiser = `
UPDATE fundraisers
SET total_charged = $2, status = 'completed', completed_at = NOW(), updated_at = NOW()
WHERE id = $1
RETURNING ` + fundraiserColumns

// CompleteFundraiser stores the recomputed charged total and marks the
// fundraiser completed. Called as the settlement batch barrier.
func (s *Store) CompleteFundraiser(ctx context.Context, id uuid.UUID, totalCharged int64) (Fundraiser, error) {
	var fundraiser Fundraiser
	err := s.db.GetContext(ctx, &fundraiser, sqlCompleteFundraiser, id, totalCharged)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fundraiser{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to complete fundraiser", err)
		return Fundraiser{}, fmt.Errorf("failed to complete fundraiser: %w", err)
	}
	return fundraiser, nil
}
