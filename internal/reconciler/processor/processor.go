package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"

	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// ReconcilerStore is the persistence surface the webhook reconciler needs.
type ReconcilerStore interface {
	RecordWebhookEvent(ctx context.Context, eventRef, eventType string) (bool, error)
	GetPledgeByID(ctx context.Context, id uuid.UUID) (store.Pledge, error)
	GetPledgeByChargeRef(ctx context.Context, chargeRef string) (store.Pledge, error)
	GetPledgeBySetupIntentRef(ctx context.Context, setupIntentRef string) (store.Pledge, error)
	MarkPledgeCharged(ctx context.Context, id uuid.UUID, multiplier, calculatedAmount,
		finalAmount, platformFee int64, chargeRef string) (store.Pledge, error)
	MarkPledgeChargedByRef(ctx context.Context, chargeRef string) error
	MarkPledgeFailed(ctx context.Context, id uuid.UUID) error
	MarkPledgeRefunded(ctx context.Context, id uuid.UUID) error
	GetChargeByRef(ctx context.Context, chargeRef string) (store.Charge, error)
	CreateCharge(ctx context.Context, params store.CreateChargeParams) (store.Charge, error)
	MarkChargeRefunded(ctx context.Context, chargeRef string, refundAmount int64) error
	GetTeamsByStripeAccount(ctx context.Context, accountID string) ([]store.Team, error)
	UpdateTeamStripeAccount(ctx context.Context, id uuid.UUID, params store.UpdateTeamStripeAccountParams) (store.Team, error)
}

// PledgeConfirmer finishes deferred-pledge authorization. Satisfied by the
// pledge processor so the gateway-confirmed path and the donor-UI path share
// one transition.
type PledgeConfirmer interface {
	ConfirmDeferredAuthorization(ctx context.Context, pledgeID uuid.UUID, paymentMethodRef string) (store.Pledge, error)
}

// Notifier enqueues donor emails for charge outcomes. Satisfied by the
// notifications client.
type Notifier interface {
	EnqueueDonorReceipt(ctx context.Context, pledgeID uuid.UUID) error
	EnqueueDeclineNotice(ctx context.Context, pledgeID uuid.UUID) error
}

// SetupIntentReader fetches the payment method behind a setup intent when
// the webhook payload arrives without one. Satisfied by the Stripe gateway.
type SetupIntentReader interface {
	GetSetupIntentPaymentMethod(ctx context.Context, setupIntentRef string) (string, error)
}

// WebhookProcessor applies gateway webhook events to the pledge ledger.
type WebhookProcessor struct {
	store     ReconcilerStore
	confirmer PledgeConfirmer
	notifier  Notifier
	gateway   SetupIntentReader
	logger    *observability.Logger

	// WebhookSecret verifies the gateway signature at the HTTP boundary.
	WebhookSecret string
}

func New(store ReconcilerStore, confirmer PledgeConfirmer, notifier Notifier,
	gateway SetupIntentReader, webhookSecret string, logger *observability.Logger) *WebhookProcessor {
	return &WebhookProcessor{
		store:         store,
		confirmer:     confirmer,
		notifier:      notifier,
		gateway:       gateway,
		logger:        logger,
		WebhookSecret: webhookSecret,
	}
}
