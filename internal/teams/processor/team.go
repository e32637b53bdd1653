package processor

import (
	"context"
	"errors"
	"fmt"

	"pledgestack/internal/events"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

type CreateTeamParams struct {
	LeagueID    uuid.UUID
	Name        string
	Description *string
	FeePercent  *int
}

// CreateTeam creates a team under a league. The creator must be able to
// manage the league and becomes the team's manager.
func (p *TeamProcessor) CreateTeam(ctx context.Context, creatorID uuid.UUID,
	params CreateTeamParams) (store.Team, error) {
	if _, err := p.store.GetLeagueByID(ctx, params.LeagueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Team{}, ErrLeagueNotFound
		}
		return store.Team{}, err
	}

	allowed, err := p.store.CanManageLeague(ctx, creatorID, params.LeagueID)
	if err != nil {
		return store.Team{}, err
	}
	if !allowed {
		return store.Team{}, ErrNotAuthorized
	}

	team, err := p.store.CreateTeam(ctx, store.CreateTeamParams{
		LeagueID:    params.LeagueID,
		Name:        params.Name,
		Description: params.Description,
		FeePercent:  params.FeePercent,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create team", err)
		return store.Team{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "team_id", Value: team.ID})

	if _, err := p.store.GrantRole(ctx, creatorID, nil, &team.ID,
		store.RoleTeamManager, &creatorID); err != nil {
		p.logger.Error(ctx, "failed to grant team manager role to creator", err)
		return store.Team{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&creatorID, "team.created", "team", team.ID,
		map[string]any{"name": team.Name, "league_id": team.LeagueID.String()}))
	return team, nil
}

func (p *TeamProcessor) GetTeam(ctx context.Context, id uuid.UUID) (store.Team, error) {
	team, err := p.store.GetTeamByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Team{}, ErrTeamNotFound
		}
		return store.Team{}, err
	}
	return team, nil
}

func (p *TeamProcessor) ListTeams(ctx context.Context, leagueID uuid.UUID) ([]store.Team, error) {
	return p.store.GetTeamsByLeague(ctx, leagueID)
}

// OnboardingLink is a short-lived URL the team manager visits to complete
// payout onboarding.
type OnboardingLink struct {
	AccountID string `json:"account_id"`
	URL       string `json:"url"`
}

// StartOnboarding creates the team's connected account on first call and
// returns an onboarding link. Safe to call again for an expired link.
func (p *TeamProcessor) StartOnboarding(ctx context.Context, callerID, teamID uuid.UUID) (OnboardingLink, error) {
	team, err := p.authorizedTeam(ctx, callerID, teamID)
	if err != nil {
		return OnboardingLink{}, err
	}

	accountID := ""
	if team.StripeAccountID != nil {
		accountID = *team.StripeAccountID
	} else {
		caller, err := p.store.GetUserByID(ctx, callerID)
		if err != nil {
			return OnboardingLink{}, err
		}
		accountID, err = p.gateway.CreateConnectAccount(ctx, caller.Email)
		if err != nil {
			p.logger.Error(ctx, "failed to create connect account", err)
			return OnboardingLink{}, err
		}
		if _, err := p.store.UpdateTeamStripeAccount(ctx, teamID,
			store.UpdateTeamStripeAccountParams{StripeAccountID: &accountID}); err != nil {
			return OnboardingLink{}, err
		}
		p.audit(ctx, events.NewAuditEvent(&callerID, "team.payout_onboarding_started", "team", teamID, nil))
	}

	refreshURL := fmt.Sprintf("%s/teams/%s/onboarding/refresh", p.webAppURI, teamID)
	returnURL := fmt.Sprintf("%s/teams/%s/onboarding/complete", p.webAppURI, teamID)
	url, err := p.gateway.CreateAccountLink(ctx, accountID, refreshURL, returnURL)
	if err != nil {
		p.logger.Error(ctx, "failed to create account link", err)
		return OnboardingLink{}, err
	}

	return OnboardingLink{AccountID: accountID, URL: url}, nil
}

// RefreshPayoutStatus pulls the connected account's capability flags from
// the gateway and stores them. The webhook reconciler does the same on
// account.updated; this is the pull path for the management UI.
func (p *TeamProcessor) RefreshPayoutStatus(ctx context.Context, callerID, teamID uuid.UUID) (store.Team, error) {
	team, err := p.authorizedTeam(ctx, callerID, teamID)
	if err != nil {
		return store.Team{}, err
	}
	if team.StripeAccountID == nil {
		return store.Team{}, ErrNotOnboarded
	}

	status, err := p.gateway.GetAccountStatus(ctx, *team.StripeAccountID)
	if err != nil {
		p.logger.Error(ctx, "failed to get account status", err)
		return store.Team{}, err
	}

	updated, err := p.store.UpdateTeamStripeAccount(ctx, teamID, store.UpdateTeamStripeAccountParams{
		StripeOnboardingCompleted: &status.DetailsSubmitted,
		StripeChargesEnabled:      &status.ChargesEnabled,
		StripePayoutsEnabled:      &status.PayoutsEnabled,
	})
	if err != nil {
		return store.Team{}, err
	}
	return updated, nil
}

func (p *TeamProcessor) authorizedTeam(ctx context.Context, callerID, teamID uuid.UUID) (store.Team, error) {
	team, err := p.store.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Team{}, ErrTeamNotFound
		}
		return store.Team{}, err
	}

	allowed, err := p.store.CanManageTeam(ctx, callerID, teamID)
	if err != nil {
		return store.Team{}, err
	}
	if !allowed {
		return store.Team{}, ErrNotAuthorized
	}
	return team, nil
}
