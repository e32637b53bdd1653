package processor

import (
	"context"
	"errors"

	"pledgestack/internal/events"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

type CreateLeagueParams struct {
	Name              string
	Description       *string
	DefaultFeePercent int
}

// LeagueDetail is a league with its teams.
type LeagueDetail struct {
	League store.League `json:"league"`
	Teams  []store.Team `json:"teams"`
}

// CreateLeague creates a league and makes the creator its admin.
func (p *LeagueProcessor) CreateLeague(ctx context.Context, creatorID uuid.UUID,
	params CreateLeagueParams) (store.League, error) {
	league, err := p.store.CreateLeague(ctx, store.CreateLeagueParams{
		Name:              params.Name,
		Description:       params.Description,
		DefaultFeePercent: params.DefaultFeePercent,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create league", err)
		return store.League{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "league_id", Value: league.ID})

	if _, err := p.store.GrantRole(ctx, creatorID, &league.ID, nil,
		store.RoleLeagueAdmin, &creatorID); err != nil {
		p.logger.Error(ctx, "failed to grant league admin role to creator", err)
		return store.League{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&creatorID, "league.created", "league", league.ID,
		map[string]any{"name": league.Name}))
	return league, nil
}

func (p *LeagueProcessor) GetLeague(ctx context.Context, id uuid.UUID) (LeagueDetail, error) {
	league, err := p.store.GetLeagueByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LeagueDetail{}, ErrLeagueNotFound
		}
		return LeagueDetail{}, err
	}

	teams, err := p.store.GetTeamsByLeague(ctx, id)
	if err != nil {
		return LeagueDetail{}, err
	}
	return LeagueDetail{League: league, Teams: teams}, nil
}

func (p *LeagueProcessor) ListLeagues(ctx context.Context) ([]store.League, error) {
	return p.store.ListLeagues(ctx)
}

type GrantRoleParams struct {
	LeagueID uuid.UUID
	Email    string
	Role     store.RoleKind
	TeamID   *uuid.UUID // required for team_manager grants
}

// GrantRole grants a league or team role to the user holding the given
// email. Only league admins (or platform admins) may grant.
func (p *LeagueProcessor) GrantRole(ctx context.Context, callerID uuid.UUID,
	params GrantRoleParams) (store.UserRole, error) {
	if _, err := p.store.GetLeagueByID(ctx, params.LeagueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.UserRole{}, ErrLeagueNotFound
		}
		return store.UserRole{}, err
	}

	allowed, err := p.store.CanManageLeague(ctx, callerID, params.LeagueID)
	if err != nil {
		return store.UserRole{}, err
	}
	if !allowed {
		return store.UserRole{}, ErrNotAuthorized
	}

	switch params.Role {
	case store.RoleLeagueAdmin:
		if params.TeamID != nil {
			return store.UserRole{}, ErrInvalidRole
		}
	case store.RoleTeamManager:
		if params.TeamID == nil {
			return store.UserRole{}, ErrInvalidRole
		}
	default:
		return store.UserRole{}, ErrInvalidRole
	}

	user, err := p.store.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.UserRole{}, ErrUserNotFound
		}
		return store.UserRole{}, err
	}

	var leagueID *uuid.UUID
	if params.Role == store.RoleLeagueAdmin {
		leagueID = &params.LeagueID
	}
	role, err := p.store.GrantRole(ctx, user.ID, leagueID, params.TeamID, params.Role, &callerID)
	if err != nil {
		p.logger.Error(ctx, "failed to grant role", err)
		return store.UserRole{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&callerID, "role.granted", "user_role", role.ID,
		map[string]any{"user_id": user.ID.String(), "role": string(params.Role)}))
	return role, nil
}
