package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateTeamParams represents parameters for creating a team
type CreateTeamParams struct {
	LeagueID    uuid.UUID
	Name        string
	Description *string
	FeePercent  *int
}

// UpdateTeamStripeAccountParams updates the team's connected account state.
// Nil fields are left unchanged.
type UpdateTeamStripeAccountParams struct {
	StripeAccountID           *string
	StripeOnboardingCompleted *bool
	StripeChargesEnabled      *bool
	StripePayoutsEnabled      *bool
}

const sqlCreateTeam = `
INSERT INTO teams (league_id, name, description, fee_percent)
VALUES ($1, $2, $3, $4)
RETURNING id, league_id, name, description, stripe_account_id, stripe_onboarding_completed,
          stripe_charges_enabled, stripe_payouts_enabled, fee_percent, created_at, updated_at
`

// CreateTeam creates a new team under a league
func (s *Store) CreateTeam(ctx context.Context, params CreateTeamParams) (Team, error) {
	var team Team
	err := s.db.GetContext(ctx, &team, sqlCreateTeam,
		params.LeagueID, params.Name, params.Description, params.FeePercent)
	if err != nil {
		s.logger.Error(ctx, "failed to create team", err)
		return Team{}, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

const sqlGetTeamByID = `
SELECT id, league_id, name, description, stripe_account_id, stripe_onboarding_completed,
       stripe_charges_enabled, stripe_payouts_enabled, fee_percent, created_at, updated_at
FROM teams
WHERE id = $1
`

// GetTeamByID fetches a team by its primary key
func (s *Store) GetTeamByID(ctx context.Context, id uuid.UUID) (Team, error) {
	var team Team
	err := s.db.GetContext(ctx, &team, sqlGetTeamByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Team{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get team", err)
		return Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

const sqlGetTeamsByLeague = `
SELECT id, league_id, name, description, stripe_account_id, stripe_onboarding_completed,
       stripe_charges_enabled, stripe_payouts_enabled, fee_percent, created_at, updated_at
FROM teams
WHERE league_id = $1
ORDER BY created_at
`

// GetTeamsByLeague lists all teams in a league
func (s *Store) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := s.db.SelectContext(ctx, &teams, sqlGetTeamsByLeague, leagueID)
	if err != nil {
		s.logger.Error(ctx, "failed to get teams by league", err)
		return nil, fmt.Errorf("failed to get teams by league: %w", err)
	}
	return teams, nil
}

const sqlUpdateTeamStripeAccount = `
UPDATE teams
SET stripe_account_id           = COALESCE($2, stripe_account_id),
    stripe_onboarding_completed = COALESCE($3, stripe_onboarding_completed),
    stripe_charges_enabled      = COALESCE($4, stripe_charges_enabled),
    stripe_payouts_enabled      = COALESCE($5, stripe_payouts_enabled),
    updated_at                  = NOW()
WHERE id = $1
RETURNING id, league_id, name, description, stripe_account_id, stripe_onboarding_completed,
          stripe_charges_enabled, stripe_payouts_enabled, fee_percent, created_at, updated_at
`

// UpdateTeamStripeAccount updates connected-account fields on a team
func (s *Store) UpdateTeamStripeAccount(ctx context.Context, id uuid.UUID,
	params UpdateTeamStripeAccountParams) (Team, error) {
	var team Team
	err := s.db.GetContext(ctx, &team, sqlUpdateTeamStripeAccount, id,
		params.StripeAccountID, params.StripeOnboardingCompleted,
		params.StripeChargesEnabled, params.StripePayoutsEnabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Team{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update team stripe account", err)
		return Team{}, fmt.Errorf("failed to update team stripe account: %w", err)
	}
	return team, nil
}

const sqlGetTeamsByStripeAccount = `
SELECT id, league_id, name, description, stripe_account_id, stripe_onboarding_completed,
       stripe_charges_enabled, stripe_payouts_enabled, fee_percent, created_at, updated_at
FROM teams
WHERE stripe_account_id = $1
`

// GetTeamsByStripeAccount finds teams linked to a connected account reference
func (s *Store) GetTeamsByStripeAccount(ctx context.Context, accountID string) ([]Team, error) {
	var teams []Team
	err := s.db.SelectContext(ctx, &teams, sqlGetTeamsByStripeAccount, accountID)
	if err != nil {
		s.logger.Error(ctx, "failed to get teams by stripe account", err)
		return nil, fmt.Errorf("failed to get teams by stripe account: %w", err)
	}
	return teams, nil
}
