package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"pledgestack/internal/events"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// LeagueStore is the persistence surface the league processor needs.
type LeagueStore interface {
	CreateLeague(ctx context.Context, params store.CreateLeagueParams) (store.League, error)
	GetLeagueByID(ctx context.Context, id uuid.UUID) (store.League, error)
	ListLeagues(ctx context.Context) ([]store.League, error)
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]store.Team, error)
	GrantRole(ctx context.Context, userID uuid.UUID, leagueID, teamID *uuid.UUID,
		role store.RoleKind, grantedBy *uuid.UUID) (store.UserRole, error)
	CanManageLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
}

var (
	ErrLeagueNotFound = errors.New("league not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotAuthorized  = errors.New("not authorized to manage league")
	ErrInvalidRole    = errors.New("invalid role for league grant")
)

type LeagueProcessor struct {
	store     LeagueStore
	publisher events.Publisher
	logger    *observability.Logger
}

func New(store LeagueStore, publisher events.Publisher, logger *observability.Logger) LeagueProcessor {
	return LeagueProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *LeagueProcessor) audit(ctx context.Context, event events.AuditEvent) {
	if err := p.publisher.PublishAudit(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}
