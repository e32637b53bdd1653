package processor

import (
	"context"
	"errors"

	"pledgestack/internal/events"
	"pledgestack/internal/fees"
	"pledgestack/internal/gateway"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// DonorInfo identifies the donor on a new pledge.
type DonorInfo struct {
	Name  string
	Email string
	Phone *string
}

// CreateImmediatePledgeParams represents parameters for a direct donation
type CreateImmediatePledgeParams struct {
	FundraiserID uuid.UUID
	Donor        DonorInfo
	Amount       int64 // cents
	DonorTip     int64 // cents
}

// CreateDeferredPledgeParams represents parameters for a performance pledge
type CreateDeferredPledgeParams struct {
	FundraiserID uuid.UUID
	Donor        DonorInfo
	BaseAmount   int64  // cents per metric unit
	CapAmount    *int64 // cents
}

// CreatedPledge is returned to the donor UI, which confirms the gateway
// intent with the client secret.
type CreatedPledge struct {
	PledgeID     uuid.UUID `json:"pledge_id"`
	ClientSecret string    `json:"client_secret"`
}

// CreateImmediatePledge opens a direct donation. The gateway intent is
// created for the full amount including tip, with the platform fee carved
// out, and the pledge waits in pending_authorization until the donor's
// browser confirms the payment.
func (p *PledgeProcessor) CreateImmediatePledge(ctx context.Context, params CreateImmediatePledgeParams) (CreatedPledge, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "fundraiser_id", Value: params.FundraiserID})

	fundraiser, team, err := p.loadChargeableFundraiser(ctx, params.FundraiserID, store.FundraiserKindDirectDonation)
	if err != nil {
		return CreatedPledge{}, err
	}

	feePercent, err := p.effectiveFeePercent(ctx, team)
	if err != nil {
		return CreatedPledge{}, err
	}
	breakdown := fees.Compute(fees.Input{
		FeePercentage: feePercent,
		BaseAmount:    params.Amount,
		DonorTip:      params.DonorTip,
	})

	customerRef, err := p.gateway.CreateCustomer(ctx, params.Donor.Email, params.Donor.Name)
	if err != nil {
		p.logger.Error(ctx, "failed to create gateway customer", err)
		return CreatedPledge{}, err
	}

	intentRef, clientSecret, err := p.gateway.CreateImmediateChargeIntent(ctx, gateway.ImmediateChargeParams{
		CustomerRef:        customerRef,
		Amount:             breakdown.FinalAmount,
		ApplicationFee:     breakdown.PlatformFee,
		ConnectedAccountID: *team.StripeAccountID,
		Description:        "Donation: " + fundraiser.Title,
		Metadata: map[string]string{
			"fundraiser_id": fundraiser.ID.String(),
			"donor_email":   params.Donor.Email,
		},
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create immediate charge intent", err)
		return CreatedPledge{}, err
	}

	pledge, err := p.store.CreatePledge(ctx, store.CreatePledgeParams{
		FundraiserID: fundraiser.ID,
		DonorName:    params.Donor.Name,
		DonorEmail:   params.Donor.Email,
		DonorPhone:   params.Donor.Phone,
		Kind:         store.PledgeKindImmediate,
		BaseAmount:   params.Amount,
		FinalAmount:  breakdown.FinalAmount,
		PlatformFee:  breakdown.PlatformFee,
		DonorTip:     params.DonorTip,
		CustomerRef:  &customerRef,
		ChargeRef:    &intentRef,
	})
	if err != nil {
		return CreatedPledge{}, err
	}

	// Donors have no account, so the audit event carries no actor.
	p.audit(ctx, events.NewAuditEvent(nil, "pledge.created", "pledge", pledge.ID,
		map[string]any{"kind": store.PledgeKindImmediate, "fundraiser_id": fundraiser.ID}))

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "pledge_id", Value: pledge.ID}), "immediate pledge created")
	return CreatedPledge{PledgeID: pledge.ID, ClientSecret: clientSecret}, nil
}

// CreateDeferredPledge opens a performance pledge. No money moves: the
// gateway stores the donor's payment method through a setup intent and the
// final amount stays zero until settlement.
func (p *PledgeProcessor) CreateDeferredPledge(ctx context.Context, params CreateDeferredPledgeParams) (CreatedPledge, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "fundraiser_id", Value: params.FundraiserID})

	fundraiser, team, err := p.loadChargeableFundraiser(ctx, params.FundraiserID, store.FundraiserKindPerformancePledge)
	if err != nil {
		return CreatedPledge{}, err
	}

	customerRef, err := p.gateway.CreateCustomer(ctx, params.Donor.Email, params.Donor.Name)
	if err != nil {
		p.logger.Error(ctx, "failed to create gateway customer", err)
		return CreatedPledge{}, err
	}

	setupIntentRef, clientSecret, err := p.gateway.CreateSetupIntent(ctx, customerRef, *team.StripeAccountID)
	if err != nil {
		p.logger.Error(ctx, "failed to create setup intent", err)
		return CreatedPledge{}, err
	}

	pledge, err := p.store.CreatePledge(ctx, store.CreatePledgeParams{
		FundraiserID: fundraiser.ID,
		DonorName:    params.Donor.Name,
		DonorEmail:   params.Donor.Email,
		DonorPhone:   params.Donor.Phone,
		Kind:         store.PledgeKindDeferred,
		BaseAmount:   params.BaseAmount,
		CapAmount:    params.CapAmount,
		CustomerRef:  &customerRef,
	})
	if err != nil {
		return CreatedPledge{}, err
	}
	if err := p.store.SetPledgeSetupIntent(ctx, pledge.ID, setupIntentRef); err != nil {
		return CreatedPledge{}, err
	}

	p.audit(ctx, events.NewAuditEvent(nil, "pledge.created", "pledge", pledge.ID,
		map[string]any{"kind": store.PledgeKindDeferred, "fundraiser_id": fundraiser.ID}))

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "pledge_id", Value: pledge.ID}), "deferred pledge created")
	return CreatedPledge{PledgeID: pledge.ID, ClientSecret: clientSecret}, nil
}

// ConfirmDeferredAuthorization transitions a deferred pledge to authorized
// once the gateway has stored its payment method, and counts the base amount
// into the fundraiser's pledged total. Confirming an already-authorized
// pledge is a no-op success so the donor UI can retry on network blips; the
// total is incremented exactly once.
func (p *PledgeProcessor) ConfirmDeferredAuthorization(ctx context.Context, pledgeID uuid.UUID, paymentMethodRef string) (store.Pledge, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledgeID})

	pledge, err := p.store.GetPledgeByID(ctx, pledgeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Pledge{}, ErrPledgeNotFound
		}
		return store.Pledge{}, err
	}
	if pledge.Status == store.PledgeStatusAuthorized {
		return pledge, nil
	}
	if pledge.Status != store.PledgeStatusPendingAuthorization {
		return store.Pledge{}, ErrPledgeNotConfirmable
	}

	// The method must be attached to the stored customer or the off-session
	// settlement charge is rejected. Attaching an already-attached method to
	// the same customer is a no-op at the gateway, so a retried confirm is
	// safe.
	if pledge.CustomerRef != nil {
		if err := p.gateway.AttachPaymentMethod(ctx, paymentMethodRef, *pledge.CustomerRef); err != nil {
			p.logger.Error(ctx, "failed to attach payment method", err)
			return store.Pledge{}, err
		}
	}

	authorized, err := p.store.AuthorizePledge(ctx, pledgeID, paymentMethodRef)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			// Lost a race with a concurrent confirmation. Whoever won also
			// incremented the total.
			current, getErr := p.store.GetPledgeByID(ctx, pledgeID)
			if getErr == nil && current.Status == store.PledgeStatusAuthorized {
				return current, nil
			}
			return store.Pledge{}, ErrPledgeNotConfirmable
		}
		return store.Pledge{}, err
	}

	if err := p.store.IncrementPledged(ctx, authorized.FundraiserID, authorized.BaseAmount); err != nil {
		p.logger.Error(ctx, "failed to increment pledged total", err)
		return store.Pledge{}, err
	}

	p.audit(ctx, events.NewAuditEvent(nil, "pledge.authorized", "pledge", authorized.ID,
		map[string]any{"fundraiser_id": authorized.FundraiserID}))

	p.logger.Info(ctx, "deferred pledge authorized")
	return authorized, nil
}

// RefundPledge reverses a charged pledge's payment in full. Only a manager
// of the owning team can refund. The gateway refund triggers a
// charge.refunded webhook, but the ledger is updated here too so the
// manager's next read reflects the refund immediately; both paths are
// forward-only no-ops once the pledge is refunded.
func (p *PledgeProcessor) RefundPledge(ctx context.Context, callerID, pledgeID uuid.UUID) (store.Pledge, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledgeID})

	pledge, err := p.store.GetPledgeByID(ctx, pledgeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Pledge{}, ErrPledgeNotFound
		}
		return store.Pledge{}, err
	}

	fundraiser, err := p.store.GetFundraiserByID(ctx, pledge.FundraiserID)
	if err != nil {
		return store.Pledge{}, err
	}
	canManage, err := p.store.CanManageTeam(ctx, callerID, fundraiser.TeamID)
	if err != nil {
		return store.Pledge{}, err
	}
	if !canManage {
		return store.Pledge{}, ErrNotAuthorized
	}

	if pledge.Status != store.PledgeStatusCharged || pledge.ChargeRef == nil {
		return store.Pledge{}, ErrPledgeNotRefundable
	}

	if _, err := p.gateway.Refund(ctx, *pledge.ChargeRef, nil); err != nil {
		p.logger.Error(ctx, "failed to refund charge", err)
		return store.Pledge{}, err
	}

	if err := p.store.MarkChargeRefunded(ctx, *pledge.ChargeRef, pledge.FinalAmount); err != nil {
		p.logger.Error(ctx, "failed to mark charge refunded", err)
		return store.Pledge{}, err
	}
	if err := p.store.MarkPledgeRefunded(ctx, pledge.ID); err != nil {
		p.logger.Error(ctx, "failed to mark pledge refunded", err)
		return store.Pledge{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&callerID, "pledge.refunded", "pledge", pledge.ID,
		map[string]any{"fundraiser_id": pledge.FundraiserID, "amount": pledge.FinalAmount}))

	p.logger.Info(ctx, "pledge refunded")
	pledge.Status = store.PledgeStatusRefunded
	return pledge, nil
}

// GetPledge fetches one pledge
func (p *PledgeProcessor) GetPledge(ctx context.Context, pledgeID uuid.UUID) (store.Pledge, error) {
	pledge, err := p.store.GetPledgeByID(ctx, pledgeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Pledge{}, ErrPledgeNotFound
		}
		return store.Pledge{}, err
	}
	return pledge, nil
}

// ListPledges lists all pledges for a fundraiser
func (p *PledgeProcessor) ListPledges(ctx context.Context, fundraiserID uuid.UUID) ([]store.Pledge, error) {
	return p.store.GetPledgesByFundraiser(ctx, fundraiserID)
}
