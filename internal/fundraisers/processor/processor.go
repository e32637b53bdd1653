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

// FundraiserStore is the persistence surface the fundraiser processor needs.
type FundraiserStore interface {
	CreateFundraiser(ctx context.Context, params store.CreateFundraiserParams) (store.Fundraiser, error)
	GetFundraiserByID(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	GetFundraisersByTeam(ctx context.Context, teamID uuid.UUID) ([]store.Fundraiser, error)
	UpdateFundraiser(ctx context.Context, id uuid.UUID,
		params store.UpdateFundraiserParams) (store.Fundraiser, error)
	PublishFundraiser(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (store.Team, error)
	CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
	CreateStatsEntry(ctx context.Context, params store.CreateStatsEntryParams) (store.StatsEntry, error)
	GetStatsByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]store.StatsEntry, error)
}

var (
	ErrFundraiserNotFound    = errors.New("fundraiser not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrNotAuthorized         = errors.New("not authorized to manage fundraiser")
	ErrInvalidConfig         = errors.New("invalid fundraiser configuration")
	ErrNotPublishable        = errors.New("fundraiser cannot be published")
	ErrPayoutNotConfigured   = errors.New("team payout destination not configured")
	ErrFundraiserNotEditable = errors.New("fundraiser can no longer be edited")
	ErrWrongFundraiserKind   = errors.New("operation not valid for fundraiser kind")
	ErrFundraiserNotActive   = errors.New("fundraiser is not active")
)

type FundraiserProcessor struct {
	store     FundraiserStore
	publisher events.Publisher
	logger    *observability.Logger
}

func New(store FundraiserStore, publisher events.Publisher, logger *observability.Logger) FundraiserProcessor {
	return FundraiserProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *FundraiserProcessor) audit(ctx context.Context, event events.AuditEvent) {
	if err := p.publisher.PublishAudit(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}
