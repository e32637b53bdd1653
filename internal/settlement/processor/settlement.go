package processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pledgestack/internal/events"
	"pledgestack/internal/fees"
	"pledgestack/internal/gateway"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// Outcome is the per-pledge result of one settlement attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// PledgeOutcome reports what happened to one pledge in a batch. Retryable
// marks an ambiguous gateway outcome: the pledge stayed authorized and the
// next trigger picks it up again.
type PledgeOutcome struct {
	PledgeID  uuid.UUID `json:"pledge_id"`
	Outcome   Outcome   `json:"outcome"`
	Amount    int64     `json:"amount"`
	Detail    string    `json:"detail,omitempty"`
	Retryable bool      `json:"retryable,omitempty"`
}

// Result is the outcome of one settlement batch. Completed is false when the
// batch left retry-eligible pledges behind and the fundraiser stays open for
// another trigger.
type Result struct {
	FundraiserID uuid.UUID       `json:"fundraiser_id"`
	Multiplier   int64           `json:"multiplier"`
	Succeeded    int             `json:"succeeded"`
	Failed       int             `json:"failed"`
	TotalCharged int64           `json:"total_charged"`
	Completed    bool            `json:"completed"`
	Outcomes     []PledgeOutcome `json:"outcomes"`
}

// TriggerSettlementParams selects the batch. StatsEntryID pins the batch to
// an explicit stats entry; when nil the most recently created entry is used.
type TriggerSettlementParams struct {
	FundraiserID uuid.UUID
	CallerID     uuid.UUID
	StatsEntryID *uuid.UUID
}

// TriggerSettlement charges every authorized pledge of a performance
// fundraiser at the final metric value. Pledges are settled independently:
// one declined card never blocks the rest, and a re-trigger after partial
// failure only touches pledges still authorized. The aggregate recompute and
// fundraiser completion happen strictly after every attempt has finished.
func (p *SettlementProcessor) TriggerSettlement(ctx context.Context, params TriggerSettlementParams) (Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "fundraiser_id", Value: params.FundraiserID})

	if !p.acquire(params.FundraiserID) {
		return Result{}, ErrSettlementInProgress
	}
	defer p.release(params.FundraiserID)

	fundraiser, err := p.store.GetFundraiserByID(ctx, params.FundraiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrFundraiserNotFound
		}
		return Result{}, err
	}

	canManage, err := p.store.CanManageTeam(ctx, params.CallerID, fundraiser.TeamID)
	if err != nil {
		return Result{}, err
	}
	if !canManage {
		return Result{}, ErrNotAuthorized
	}

	if fundraiser.Kind != store.FundraiserKindPerformancePledge {
		return Result{}, ErrWrongFundraiserKind
	}
	if fundraiser.Status == store.FundraiserStatusCompleted {
		return Result{}, ErrFundraiserCompleted
	}

	team, err := p.store.GetTeamByID(ctx, fundraiser.TeamID)
	if err != nil {
		return Result{}, err
	}
	if team.StripeAccountID == nil || !team.StripeChargesEnabled {
		return Result{}, ErrPayoutNotConfigured
	}

	entry, err := p.resolveStatsEntry(ctx, params)
	if err != nil {
		return Result{}, err
	}

	feePercent, err := p.effectiveFeePercent(ctx, team)
	if err != nil {
		return Result{}, err
	}

	pledges, err := p.store.GetAuthorizedPledges(ctx, fundraiser.ID)
	if err != nil {
		return Result{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "multiplier", Value: entry.MetricValue},
		observability.Field{Key: "pledge_count", Value: len(pledges)})
	p.logger.Info(ctx, "settlement batch started")

	result := Result{
		FundraiserID: fundraiser.ID,
		Multiplier:   entry.MetricValue,
	}
	for _, pledge := range pledges {
		outcome := p.settlePledge(ctx, pledge, fundraiser, team, entry.MetricValue, feePercent)
		if outcome.Outcome == OutcomeSuccess {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	// Barrier: every attempt above is finished. The total comes from a fresh
	// scan of charged pledges, not from summing this run's outcomes, so a
	// re-trigger after partial failure converges instead of drifting.
	totalCharged, err := p.store.SumChargedPledges(ctx, fundraiser.ID)
	if err != nil {
		return Result{}, err
	}

	retryable := false
	for _, outcome := range result.Outcomes {
		if outcome.Retryable {
			retryable = true
			break
		}
	}
	if retryable {
		// Retry-eligible pledges are still authorized. Completing now would
		// trip the completed-status guard on the next trigger and strand
		// them, so only the recomputed total is stored.
		if err := p.store.SetFundraiserTotalCharged(ctx, fundraiser.ID, totalCharged); err != nil {
			return Result{}, err
		}
	} else {
		if _, err := p.store.CompleteFundraiser(ctx, fundraiser.ID, totalCharged); err != nil {
			return Result{}, err
		}
		result.Completed = true
	}
	result.TotalCharged = totalCharged

	p.audit(ctx, events.NewAuditEvent(&params.CallerID, "fundraiser.charges_triggered", "fundraiser", fundraiser.ID,
		map[string]any{
			"multiplier":    entry.MetricValue,
			"succeeded":     result.Succeeded,
			"failed":        result.Failed,
			"total_charged": totalCharged,
			"completed":     result.Completed,
		}))

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "succeeded", Value: result.Succeeded},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "total_charged", Value: totalCharged}), "settlement batch finished")
	return result, nil
}

// settlePledge attempts one charge. Never returns an error: every failure
// mode is recorded as an outcome so the batch continues.
func (p *SettlementProcessor) settlePledge(ctx context.Context, pledge store.Pledge,
	fundraiser store.Fundraiser, team store.Team, multiplier int64, feePercent int) PledgeOutcome {
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledge.ID})

	breakdown := fees.Compute(fees.Input{
		FeePercentage: feePercent,
		BaseAmount:    pledge.BaseAmount,
		Multiplier:    &multiplier,
		CapAmount:     pledge.CapAmount,
		DonorTip:      pledge.DonorTip,
	})

	if breakdown.FinalAmount <= 0 {
		return p.recordDecline(ctx, pledge, fundraiser, breakdown,
			"zero_amount", "computed charge amount is zero")
	}
	if pledge.CustomerRef == nil || pledge.PaymentMethodRef == nil {
		return p.recordDecline(ctx, pledge, fundraiser, breakdown,
			"missing_payment_method", "pledge has no stored payment method")
	}

	// The attempt number counts only definitive declines, so a retry after
	// an ambiguous gateway outcome reuses the previous key and cannot
	// double-charge.
	attempt, err := p.store.CountDeclinedCharges(ctx, pledge.ID)
	if err != nil {
		return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeFailure, Detail: "failed to derive idempotency key"}
	}
	idempotencyKey := fmt.Sprintf("pledge:%s:attempt:%d", pledge.ID, attempt)

	chargeRef, err := p.gateway.ChargeStoredMethod(ctx, gateway.ChargeParams{
		CustomerRef:        *pledge.CustomerRef,
		PaymentMethodRef:   *pledge.PaymentMethodRef,
		Amount:             breakdown.FinalAmount,
		ApplicationFee:     breakdown.PlatformFee,
		ConnectedAccountID: *team.StripeAccountID,
		IdempotencyKey:     idempotencyKey,
		Description:        "Pledge settlement: " + fundraiser.Title,
		Metadata: map[string]string{
			"pledge_id":     pledge.ID.String(),
			"fundraiser_id": fundraiser.ID.String(),
			"multiplier":    strconv.FormatInt(multiplier, 10),
		},
	})
	if err != nil {
		var declined *gateway.DeclinedError
		if errors.As(err, &declined) {
			return p.recordDecline(ctx, pledge, fundraiser, breakdown, declined.Code, declined.Message)
		}
		// Unknown outcome. The pledge stays authorized so the next trigger
		// retries it under the same idempotency key.
		return p.recordUnavailable(ctx, pledge, fundraiser, breakdown, err)
	}

	if _, err := p.store.MarkPledgeCharged(ctx, pledge.ID, multiplier,
		breakdown.CalculatedAmount, breakdown.FinalAmount, breakdown.PlatformFee, chargeRef); err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			// The webhook reconciler or an idempotent gateway replay got
			// here first. The money moved once either way.
			p.logger.WarnWithError(ctx, "pledge already charged", err)
			return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeSuccess,
				Amount: breakdown.FinalAmount, Detail: "already charged"}
		}
		p.logger.Error(ctx, "failed to mark pledge charged", err)
		return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeFailure,
			Detail: "charge succeeded but ledger update failed; will reconcile via webhook"}
	}

	if _, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		PledgeID:     pledge.ID,
		FundraiserID: fundraiser.ID,
		GrossAmount:  breakdown.FinalAmount,
		PlatformFee:  breakdown.PlatformFee,
		DonorTip:     breakdown.DonorTip,
		NetAmount:    breakdown.NetAmount,
		ChargeRef:    &chargeRef,
		Status:       store.ChargeStatusSucceeded,
	}); err != nil {
		p.logger.Error(ctx, "failed to record succeeded charge", err)
	}

	return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeSuccess, Amount: breakdown.FinalAmount}
}

// recordDecline finalizes a definitively failed attempt: failed charge row,
// pledge moved to failed, batch continues.
func (p *SettlementProcessor) recordDecline(ctx context.Context, pledge store.Pledge,
	fundraiser store.Fundraiser, breakdown fees.Breakdown, code, message string) PledgeOutcome {
	if _, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		PledgeID:       pledge.ID,
		FundraiserID:   fundraiser.ID,
		GrossAmount:    breakdown.FinalAmount,
		PlatformFee:    breakdown.PlatformFee,
		DonorTip:       breakdown.DonorTip,
		NetAmount:      breakdown.NetAmount,
		Status:         store.ChargeStatusFailed,
		FailureCode:    &code,
		FailureMessage: &message,
	}); err != nil {
		p.logger.Error(ctx, "failed to record declined charge", err)
	}
	if err := p.store.MarkPledgeFailed(ctx, pledge.ID); err != nil {
		p.logger.Error(ctx, "failed to mark pledge failed", err)
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "failure_code", Value: code}), "pledge charge declined")
	return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeFailure, Detail: code + ": " + message}
}

// recordUnavailable records an ambiguous-outcome attempt. The pledge is NOT
// failed: it stays authorized and the next trigger retries it.
func (p *SettlementProcessor) recordUnavailable(ctx context.Context, pledge store.Pledge,
	fundraiser store.Fundraiser, breakdown fees.Breakdown, cause error) PledgeOutcome {
	code := store.FailureCodeGatewayUnavailable
	message := cause.Error()
	if _, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		PledgeID:       pledge.ID,
		FundraiserID:   fundraiser.ID,
		GrossAmount:    breakdown.FinalAmount,
		PlatformFee:    breakdown.PlatformFee,
		DonorTip:       breakdown.DonorTip,
		NetAmount:      breakdown.NetAmount,
		Status:         store.ChargeStatusFailed,
		FailureCode:    &code,
		FailureMessage: &message,
	}); err != nil {
		p.logger.Error(ctx, "failed to record unavailable charge attempt", err)
	}
	p.logger.WarnWithError(ctx, "gateway unavailable, pledge left authorized for retry", cause)
	return PledgeOutcome{PledgeID: pledge.ID, Outcome: OutcomeFailure, Retryable: true,
		Detail: "gateway unavailable; pledge remains eligible for retry"}
}

func (p *SettlementProcessor) resolveStatsEntry(ctx context.Context, params TriggerSettlementParams) (store.StatsEntry, error) {
	if params.StatsEntryID != nil {
		entry, err := p.store.GetStatsEntryByID(ctx, *params.StatsEntryID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.StatsEntry{}, ErrStatsEntryNotFound
			}
			return store.StatsEntry{}, err
		}
		if entry.FundraiserID != params.FundraiserID {
			return store.StatsEntry{}, ErrStatsEntryMismatch
		}
		return entry, nil
	}

	entry, err := p.store.GetLatestStatsEntry(ctx, params.FundraiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.StatsEntry{}, ErrNoStatsEntered
		}
		return store.StatsEntry{}, err
	}
	return entry, nil
}

func (p *SettlementProcessor) effectiveFeePercent(ctx context.Context, team store.Team) (int, error) {
	if team.FeePercent != nil {
		return *team.FeePercent, nil
	}
	league, err := p.store.GetLeagueByID(ctx, team.LeagueID)
	if err != nil {
		return 0, err
	}
	return league.DefaultFeePercent, nil
}
