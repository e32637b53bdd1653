package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"sync"

	"pledgestack/internal/events"
	"pledgestack/internal/gateway"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// SettlementStore defines the database operations required by SettlementProcessor
type SettlementStore interface {
	GetFundraiserByID(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (store.Team, error)
	GetLeagueByID(ctx context.Context, id uuid.UUID) (store.League, error)
	GetLatestStatsEntry(ctx context.Context, fundraiserID uuid.UUID) (store.StatsEntry, error)
	GetStatsEntryByID(ctx context.Context, id uuid.UUID) (store.StatsEntry, error)
	GetAuthorizedPledges(ctx context.Context, fundraiserID uuid.UUID) ([]store.Pledge, error)
	CountDeclinedCharges(ctx context.Context, pledgeID uuid.UUID) (int, error)
	MarkPledgeCharged(ctx context.Context, id uuid.UUID, multiplier, calculatedAmount, finalAmount, platformFee int64, chargeRef string) (store.Pledge, error)
	MarkPledgeFailed(ctx context.Context, id uuid.UUID) error
	CreateCharge(ctx context.Context, params store.CreateChargeParams) (store.Charge, error)
	SumChargedPledges(ctx context.Context, fundraiserID uuid.UUID) (int64, error)
	SetFundraiserTotalCharged(ctx context.Context, id uuid.UUID, totalCharged int64) error
	CompleteFundraiser(ctx context.Context, id uuid.UUID, totalCharged int64) (store.Fundraiser, error)
}

// PaymentGateway defines the gateway operations required by SettlementProcessor
type PaymentGateway interface {
	ChargeStoredMethod(ctx context.Context, p gateway.ChargeParams) (string, error)
}

var (
	ErrFundraiserNotFound   = errors.New("fundraiser not found")
	ErrNotAuthorized        = errors.New("caller is not authorized to manage this team")
	ErrWrongFundraiserKind  = errors.New("settlement only applies to performance pledge fundraisers")
	ErrFundraiserCompleted  = errors.New("fundraiser is already settled")
	ErrPayoutNotConfigured  = errors.New("team payout destination is not configured")
	ErrNoStatsEntered       = errors.New("no stats entered for fundraiser")
	ErrStatsEntryNotFound   = errors.New("stats entry not found")
	ErrStatsEntryMismatch   = errors.New("stats entry belongs to a different fundraiser")
	ErrSettlementInProgress = errors.New("a settlement run is already in progress for this fundraiser")
)

// SettlementProcessor executes settlement batches. The inFlight set is the
// mutual exclusion required between overlapping settlement triggers for the
// same fundraiser; everything else is serialized by the pledge status guards
// in the store.
type SettlementProcessor struct {
	store     SettlementStore
	gateway   PaymentGateway
	publisher events.Publisher
	logger    *observability.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func New(store SettlementStore, gateway PaymentGateway, publisher events.Publisher,
	logger *observability.Logger) *SettlementProcessor {
	return &SettlementProcessor{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
		inFlight:  make(map[uuid.UUID]struct{}),
	}
}

// audit publishing is best effort. A Kafka outage must never fail a batch
// that already moved money.
func (p *SettlementProcessor) audit(ctx context.Context, event events.AuditEvent) {
	if err := p.publisher.PublishAudit(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}

func (p *SettlementProcessor) acquire(fundraiserID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inFlight[fundraiserID]; busy {
		return false
	}
	p.inFlight[fundraiserID] = struct{}{}
	return true
}

func (p *SettlementProcessor) release(fundraiserID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, fundraiserID)
}
