package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"pledgestack/internal/events"
	"pledgestack/internal/gateway"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// TeamStore is the persistence surface the team processor needs.
type TeamStore interface {
	CreateTeam(ctx context.Context, params store.CreateTeamParams) (store.Team, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (store.Team, error)
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]store.Team, error)
	UpdateTeamStripeAccount(ctx context.Context, id uuid.UUID,
		params store.UpdateTeamStripeAccountParams) (store.Team, error)
	GetLeagueByID(ctx context.Context, id uuid.UUID) (store.League, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
	GrantRole(ctx context.Context, userID uuid.UUID, leagueID, teamID *uuid.UUID,
		role store.RoleKind, grantedBy *uuid.UUID) (store.UserRole, error)
	CanManageLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error)
	CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
}

// ConnectGateway is the payout-onboarding surface of the payment gateway.
type ConnectGateway interface {
	CreateConnectAccount(ctx context.Context, email string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccountStatus(ctx context.Context, accountID string) (gateway.AccountStatus, error)
}

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrLeagueNotFound = errors.New("league not found")
	ErrNotAuthorized  = errors.New("not authorized to manage team")
	ErrNotOnboarded   = errors.New("team has not started payout onboarding")
)

type TeamProcessor struct {
	store     TeamStore
	gateway   ConnectGateway
	publisher events.Publisher
	webAppURI string
	logger    *observability.Logger
}

func New(store TeamStore, gateway ConnectGateway, publisher events.Publisher,
	webAppURI string, logger *observability.Logger) TeamProcessor {
	return TeamProcessor{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
		webAppURI: webAppURI,
		logger:    logger,
	}
}

func (p *TeamProcessor) audit(ctx context.Context, event events.AuditEvent) {
	if err := p.publisher.PublishAudit(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}
