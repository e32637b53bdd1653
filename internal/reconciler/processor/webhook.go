package processor

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"pledgestack/internal/observability"
	"pledgestack/internal/pledges/processor"
	"pledgestack/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

// HandleEvent applies one verified gateway event. Every delivery is claimed
// in webhook_events first, so a redelivered event is acknowledged without
// touching the ledger. Events that reference nothing we track are logged and
// dropped rather than failed, so the gateway does not redeliver them forever.
func (p *WebhookProcessor) HandleEvent(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_ref", Value: event.ID},
		observability.Field{Key: "event_type", Value: string(event.Type)})

	claimed, err := p.store.RecordWebhookEvent(ctx, event.ID, string(event.Type))
	if err != nil {
		return err
	}
	if !claimed {
		p.logger.Info(ctx, "duplicate webhook delivery skipped")
		return nil
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			p.logger.Error(ctx, "failed to unmarshal payment intent", err)
			return err
		}
		return p.paymentIntentSucceeded(ctx, intent)

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			p.logger.Error(ctx, "failed to unmarshal payment intent", err)
			return err
		}
		return p.paymentIntentFailed(ctx, intent)

	case "setup_intent.succeeded":
		var intent stripe.SetupIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			p.logger.Error(ctx, "failed to unmarshal setup intent", err)
			return err
		}
		return p.setupIntentSucceeded(ctx, intent)

	case "setup_intent.setup_failed":
		var intent stripe.SetupIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			p.logger.Error(ctx, "failed to unmarshal setup intent", err)
			return err
		}
		return p.setupIntentFailed(ctx, intent)

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			p.logger.Error(ctx, "failed to unmarshal charge", err)
			return err
		}
		return p.chargeRefunded(ctx, charge)

	case "account.updated":
		var account stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &account); err != nil {
			p.logger.Error(ctx, "failed to unmarshal account", err)
			return err
		}
		return p.accountUpdated(ctx, account)

	default:
		p.logger.Info(ctx, "ignoring unhandled webhook event type")
		return nil
	}
}

// paymentIntentSucceeded confirms that money moved. For immediate pledges the
// intent reference was stored at creation, so this is where the pledge first
// becomes charged and gets its charge row. For deferred pledges the settlement
// loop usually got here first and the transition is a no-op. When the
// charge-ref lookup misses, the intent metadata still names the pledge, so a
// settlement charge whose store write was lost is recovered instead of
// dropped.
func (p *WebhookProcessor) paymentIntentSucceeded(ctx context.Context, intent stripe.PaymentIntent) error {
	pledge, err := p.store.GetPledgeByChargeRef(ctx, intent.ID)
	switch {
	case err == nil:
		ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})
		if err := p.store.MarkPledgeChargedByRef(ctx, intent.ID); err != nil {
			return err
		}
	case errors.Is(err, store.ErrNotFound):
		pledge, err = p.recoverPledgeFromMetadata(ctx, intent)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Info(ctx, "payment intent does not match a pledge")
				return nil
			}
			return err
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})
	default:
		return err
	}

	if _, err := p.store.GetChargeByRef(ctx, intent.ID); err == nil {
		// Settlement already recorded the charge row; the webhook only
		// confirms it. The donor still gets their receipt.
		p.notifyReceipt(ctx, pledge.ID)
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	chargeRef := intent.ID
	if _, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		PledgeID:     pledge.ID,
		FundraiserID: pledge.FundraiserID,
		GrossAmount:  intent.Amount,
		PlatformFee:  intent.ApplicationFeeAmount,
		DonorTip:     pledge.DonorTip,
		NetAmount:    intent.Amount - intent.ApplicationFeeAmount,
		ChargeRef:    &chargeRef,
		Status:       store.ChargeStatusSucceeded,
	}); err != nil {
		return err
	}
	p.notifyReceipt(ctx, pledge.ID)
	p.logger.Info(ctx, "pledge charged via webhook")
	return nil
}

// recoverPledgeFromMetadata handles a success event for a charge whose
// reference never reached the ledger: the gateway charge went through but the
// write after it failed, so the pledge is still authorized without a
// charge_ref. Settlement stamps the pledge ID and multiplier onto the intent
// metadata for exactly this case; marking the pledge charged here backfills
// the reference for future lookups.
func (p *WebhookProcessor) recoverPledgeFromMetadata(ctx context.Context, intent stripe.PaymentIntent) (store.Pledge, error) {
	pledgeID, err := uuid.Parse(intent.Metadata["pledge_id"])
	if err != nil {
		return store.Pledge{}, store.ErrNotFound
	}
	pledge, err := p.store.GetPledgeByID(ctx, pledgeID)
	if err != nil {
		return store.Pledge{}, err
	}
	if pledge.Status == store.PledgeStatusCharged {
		return pledge, nil
	}

	multiplier, err := strconv.ParseInt(intent.Metadata["multiplier"], 10, 64)
	if err != nil {
		multiplier = 1
	}
	charged, err := p.store.MarkPledgeCharged(ctx, pledgeID, multiplier,
		intent.Amount-pledge.DonorTip, intent.Amount, intent.ApplicationFeeAmount, intent.ID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			// Another delivery won the race and set the reference.
			return p.store.GetPledgeByID(ctx, pledgeID)
		}
		return store.Pledge{}, err
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "pledge_id", Value: charged.ID}),
		"charged pledge recovered from intent metadata")
	return charged, nil
}

func (p *WebhookProcessor) paymentIntentFailed(ctx context.Context, intent stripe.PaymentIntent) error {
	pledge, err := p.store.GetPledgeByChargeRef(ctx, intent.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "payment intent does not match a pledge")
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})

	code, message := declineDetail(intent.LastPaymentError)
	chargeRef := intent.ID
	if _, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		PledgeID:       pledge.ID,
		FundraiserID:   pledge.FundraiserID,
		GrossAmount:    intent.Amount,
		PlatformFee:    intent.ApplicationFeeAmount,
		DonorTip:       pledge.DonorTip,
		NetAmount:      intent.Amount - intent.ApplicationFeeAmount,
		ChargeRef:      &chargeRef,
		Status:         store.ChargeStatusFailed,
		FailureCode:    &code,
		FailureMessage: &message,
	}); err != nil {
		p.logger.Error(ctx, "failed to record failed charge attempt", err)
	}

	// MarkPledgeFailed is guarded on pre-charge states, so a late failure
	// event for an already-charged pledge cannot move it backward.
	if err := p.store.MarkPledgeFailed(ctx, pledge.ID); err != nil {
		return err
	}
	if err := p.notifier.EnqueueDeclineNotice(ctx, pledge.ID); err != nil {
		p.logger.WarnWithError(ctx, "failed to enqueue decline notice", err)
	}
	p.logger.Info(ctx, "pledge marked failed via webhook")
	return nil
}

func (p *WebhookProcessor) setupIntentSucceeded(ctx context.Context, intent stripe.SetupIntent) error {
	pledge, err := p.store.GetPledgeBySetupIntentRef(ctx, intent.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "setup intent does not match a pledge")
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})

	methodRef := ""
	if intent.PaymentMethod != nil {
		methodRef = intent.PaymentMethod.ID
	}
	if methodRef == "" {
		// Webhook payloads carry the method as an unexpanded reference that
		// can come through empty; the gateway still has it.
		methodRef, err = p.gateway.GetSetupIntentPaymentMethod(ctx, intent.ID)
		if err != nil {
			return err
		}
		if methodRef == "" {
			p.logger.Info(ctx, "setup intent succeeded without a payment method")
			return nil
		}
	}

	if _, err := p.confirmer.ConfirmDeferredAuthorization(ctx, pledge.ID, methodRef); err != nil {
		if errors.Is(err, processor.ErrPledgeNotConfirmable) {
			p.logger.Info(ctx, "pledge no longer confirmable, skipping")
			return nil
		}
		return err
	}
	p.logger.Info(ctx, "pledge authorized via webhook")
	return nil
}

func (p *WebhookProcessor) setupIntentFailed(ctx context.Context, intent stripe.SetupIntent) error {
	pledge, err := p.store.GetPledgeBySetupIntentRef(ctx, intent.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "setup intent does not match a pledge")
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})

	if err := p.store.MarkPledgeFailed(ctx, pledge.ID); err != nil {
		return err
	}
	p.logger.Info(ctx, "pledge authorization failed via webhook")
	return nil
}

func (p *WebhookProcessor) chargeRefunded(ctx context.Context, charge stripe.Charge) error {
	if charge.PaymentIntent == nil || charge.PaymentIntent.ID == "" {
		p.logger.Info(ctx, "refunded charge has no payment intent reference")
		return nil
	}
	chargeRef := charge.PaymentIntent.ID

	pledge, err := p.store.GetPledgeByChargeRef(ctx, chargeRef)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "refunded charge does not match a pledge")
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})

	if err := p.store.MarkChargeRefunded(ctx, chargeRef, charge.AmountRefunded); err != nil {
		return err
	}
	if err := p.store.MarkPledgeRefunded(ctx, pledge.ID); err != nil {
		return err
	}
	p.logger.Info(ctx, "pledge refunded via webhook")
	return nil
}

// accountUpdated refreshes connected-account capability flags on every team
// linked to the account.
func (p *WebhookProcessor) accountUpdated(ctx context.Context, account stripe.Account) error {
	teams, err := p.store.GetTeamsByStripeAccount(ctx, account.ID)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		p.logger.Info(ctx, "account does not match a team")
		return nil
	}

	onboarded := account.DetailsSubmitted
	chargesEnabled := account.ChargesEnabled
	payoutsEnabled := account.PayoutsEnabled
	for _, team := range teams {
		if _, err := p.store.UpdateTeamStripeAccount(ctx, team.ID, store.UpdateTeamStripeAccountParams{
			StripeOnboardingCompleted: &onboarded,
			StripeChargesEnabled:      &chargesEnabled,
			StripePayoutsEnabled:      &payoutsEnabled,
		}); err != nil {
			return err
		}
	}
	p.logger.Info(ctx, "team payout capabilities refreshed")
	return nil
}

// notifyReceipt is best effort. A queue outage must never fail the webhook,
// or the gateway would redeliver an event the ledger already absorbed.
func (p *WebhookProcessor) notifyReceipt(ctx context.Context, pledgeID uuid.UUID) {
	if err := p.notifier.EnqueueDonorReceipt(ctx, pledgeID); err != nil {
		p.logger.WarnWithError(ctx, "failed to enqueue donor receipt", err)
	}
}

func declineDetail(lastErr *stripe.Error) (code, message string) {
	code = "payment_failed"
	if lastErr == nil {
		return code, "payment failed"
	}
	if lastErr.DeclineCode != "" {
		code = string(lastErr.DeclineCode)
	} else if lastErr.Code != "" {
		code = string(lastErr.Code)
	}
	return code, lastErr.Msg
}
