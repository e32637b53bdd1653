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

// PledgeStore defines the database operations required by PledgeProcessor
type PledgeStore interface {
	GetFundraiserByID(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (store.Team, error)
	GetLeagueByID(ctx context.Context, id uuid.UUID) (store.League, error)
	CreatePledge(ctx context.Context, params store.CreatePledgeParams) (store.Pledge, error)
	GetPledgeByID(ctx context.Context, id uuid.UUID) (store.Pledge, error)
	GetPledgesByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]store.Pledge, error)
	SetPledgeSetupIntent(ctx context.Context, id uuid.UUID, setupIntentRef string) error
	AuthorizePledge(ctx context.Context, id uuid.UUID, paymentMethodRef string) (store.Pledge, error)
	IncrementPledged(ctx context.Context, id uuid.UUID, delta int64) error
	CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
	MarkChargeRefunded(ctx context.Context, chargeRef string, refundAmount int64) error
	MarkPledgeRefunded(ctx context.Context, id uuid.UUID) error
}

// PaymentGateway defines the gateway operations required by PledgeProcessor
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSetupIntent(ctx context.Context, customerRef, connectedAccountID string) (string, string, error)
	CreateImmediateChargeIntent(ctx context.Context, p gateway.ImmediateChargeParams) (string, string, error)
	AttachPaymentMethod(ctx context.Context, methodRef, customerRef string) error
	Refund(ctx context.Context, chargeRef string, amount *int64) (string, error)
}

var (
	ErrFundraiserNotFound    = errors.New("fundraiser not found")
	ErrPledgeNotFound        = errors.New("pledge not found")
	ErrFundraiserUnavailable = errors.New("fundraiser is not accepting pledges")
	ErrWrongFundraiserKind   = errors.New("operation not valid for this fundraiser kind")
	ErrPayoutNotConfigured   = errors.New("team payout destination is not configured")
	ErrPledgeNotConfirmable  = errors.New("pledge can no longer be confirmed")
	ErrPledgeNotRefundable   = errors.New("pledge has no refundable charge")
	ErrNotAuthorized         = errors.New("caller is not authorized to manage this team")
)

type PledgeProcessor struct {
	store     PledgeStore
	gateway   PaymentGateway
	publisher events.Publisher
	logger    *observability.Logger
}

func New(store PledgeStore, gateway PaymentGateway, publisher events.Publisher,
	logger *observability.Logger) PledgeProcessor {
	return PledgeProcessor{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// audit publishing is best effort. A Kafka outage must never fail a
// donation.
func (p *PledgeProcessor) audit(ctx context.Context, event events.AuditEvent) {
	if err := p.publisher.PublishAudit(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}

// loadChargeableFundraiser checks the shared preconditions of pledge
// creation: the fundraiser is active, of the expected kind, and its team has
// a charge-capable connected account.
func (p *PledgeProcessor) loadChargeableFundraiser(ctx context.Context, fundraiserID uuid.UUID,
	kind store.FundraiserKind) (store.Fundraiser, store.Team, error) {
	fundraiser, err := p.store.GetFundraiserByID(ctx, fundraiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Fundraiser{}, store.Team{}, ErrFundraiserNotFound
		}
		return store.Fundraiser{}, store.Team{}, err
	}
	if fundraiser.Status != store.FundraiserStatusActive {
		return store.Fundraiser{}, store.Team{}, ErrFundraiserUnavailable
	}
	if fundraiser.Kind != kind {
		return store.Fundraiser{}, store.Team{}, ErrWrongFundraiserKind
	}

	team, err := p.store.GetTeamByID(ctx, fundraiser.TeamID)
	if err != nil {
		return store.Fundraiser{}, store.Team{}, err
	}
	if team.StripeAccountID == nil || !team.StripeChargesEnabled {
		return store.Fundraiser{}, store.Team{}, ErrPayoutNotConfigured
	}
	return fundraiser, team, nil
}

// effectiveFeePercent resolves the platform fee: team override when set,
// otherwise the league default.
func (p *PledgeProcessor) effectiveFeePercent(ctx context.Context, team store.Team) (int, error) {
	if team.FeePercent != nil {
		return *team.FeePercent, nil
	}
	league, err := p.store.GetLeagueByID(ctx, team.LeagueID)
	if err != nil {
		return 0, err
	}
	return league.DefaultFeePercent, nil
}
