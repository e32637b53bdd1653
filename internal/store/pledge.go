package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a pledge status update would move
// the state machine backward or skip a state.
var ErrInvalidTransition = errors.New("invalid pledge status transition")

// CreatePledgeParams represents parameters for creating a pledge
type CreatePledgeParams struct {
	FundraiserID uuid.UUID
	DonorName    string
	DonorEmail   string
	DonorPhone   *string
	Kind         PledgeKind
	BaseAmount   int64
	CapAmount    *int64
	FinalAmount  int64
	PlatformFee  int64
	DonorTip     int64
	CustomerRef  *string
	ChargeRef    *string // payment intent ref for immediate pledges awaiting confirmation
}

const pledgeColumns = `id, fundraiser_id, donor_name, donor_email, donor_phone, kind,
       base_amount, cap_amount, multiplier, calculated_amount, final_amount, platform_fee,
       donor_tip, customer_ref, setup_intent_ref, payment_method_ref, charge_ref, status,
       authorized_at, charged_at, refunded_at, created_at, updated_at`

const sqlCreatePledge = `
INSERT INTO pledges (fundraiser_id, donor_name, donor_email, donor_phone, kind, base_amount,
                     cap_amount, final_amount, platform_fee, donor_tip, customer_ref,
                     charge_ref, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending_authorization')
RETURNING ` + pledgeColumns

// CreatePledge persists a new pledge in pending_authorization status
func (s *Store) CreatePledge(ctx context.Context, params CreatePledgeParams) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlCreatePledge,
		params.FundraiserID, params.DonorName, params.DonorEmail, params.DonorPhone,
		params.Kind, params.BaseAmount, params.CapAmount, params.FinalAmount,
		params.PlatformFee, params.DonorTip, params.CustomerRef, params.ChargeRef)
	if err != nil {
		s.logger.Error(ctx, "failed to create pledge", err)
		return Pledge{}, fmt.Errorf("failed to create pledge: %w", err)
	}
	return pledge, nil
}

const sqlGetPledgeByID = `
SELECT ` + pledgeColumns + `
FROM pledges
WHERE id = $1
`

// GetPledgeByID fetches a pledge by its primary key
func (s *Store) GetPledgeByID(ctx context.Context, id uuid.UUID) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlGetPledgeByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pledge{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get pledge", err)
		return Pledge{}, fmt.Errorf("failed to get pledge: %w", err)
	}
	return pledge, nil
}

const sqlGetPledgesByFundraiser = `
SELECT ` + pledgeColumns + `
FROM pledges
WHERE fundraiser_id = $1
ORDER BY created_at
`

// GetPledgesByFundraiser lists all pledges for a fundraiser
func (s *Store) GetPledgesByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]Pledge, error) {
	var pledges []Pledge
	err := s.db.SelectContext(ctx, &pledges, sqlGetPledgesByFundraiser, fundraiserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get pledges by fundraiser", err)
		return nil, fmt.Errorf("failed to get pledges by fundraiser: %w", err)
	}
	return pledges, nil
}

const sqlGetAuthorizedPledges = `
SELECT ` + pledgeColumns + `
FROM pledges
WHERE fundraiser_id = $1 AND status = 'authorized'
ORDER BY created_at
`

// GetAuthorizedPledges lists pledges still eligible for settlement. Pledges
// already charged or failed are excluded, which is what makes a settlement
// re-trigger safe.
func (s *Store) GetAuthorizedPledges(ctx context.Context, fundraiserID uuid.UUID) ([]Pledge, error) {
	var pledges []Pledge
	err := s.db.SelectContext(ctx, &pledges, sqlGetAuthorizedPledges, fundraiserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get authorized pledges", err)
		return nil, fmt.Errorf("failed to get authorized pledges: %w", err)
	}
	return pledges, nil
}

const sqlGetPledgeBySetupIntentRef = `
SELECT ` + pledgeColumns + `
FROM pledges
WHERE setup_intent_ref = $1
`

// GetPledgeBySetupIntentRef resolves a gateway setup intent reference back to
// its pledge. Used by the webhook reconciler.
func (s *Store) GetPledgeBySetupIntentRef(ctx context.Context, setupIntentRef string) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlGetPledgeBySetupIntentRef, setupIntentRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pledge{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get pledge by setup intent ref", err)
		return Pledge{}, fmt.Errorf("failed to get pledge by setup intent ref: %w", err)
	}
	return pledge, nil
}

const sqlGetPledgeByChargeRef = `
SELECT ` + pledgeColumns + `
FROM pledges
WHERE charge_ref = $1
`

// GetPledgeByChargeRef resolves a gateway payment reference back to its pledge
func (s *Store) GetPledgeByChargeRef(ctx context.Context, chargeRef string) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlGetPledgeByChargeRef, chargeRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pledge{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get pledge by charge ref", err)
		return Pledge{}, fmt.Errorf("failed to get pledge by charge ref: %w", err)
	}
	return pledge, nil
}

const sqlSetPledgeSetupIntent = `
UPDATE pledges
SET setup_intent_ref = $2, updated_at = NOW()
WHERE id = $1
`

// SetPledgeSetupIntent records the gateway setup intent reference
func (s *Store) SetPledgeSetupIntent(ctx context.Context, id uuid.UUID, setupIntentRef string) error {
	_, err := s.db.ExecContext(ctx, sqlSetPledgeSetupIntent, id, setupIntentRef)
	if err != nil {
		s.logger.Error(ctx, "failed to set pledge setup intent", err)
		return fmt.Errorf("failed to set pledge setup intent: %w", err)
	}
	return nil
}

const sqlAuthorizePledge = `
UPDATE pledges
SET payment_method_ref = $2, status = 'authorized', authorized_at = NOW(), updated_at = NOW()
WHERE id = $1 AND status = 'pending_authorization'
RETURNING ` + pledgeColumns

// AuthorizePledge transitions pending_authorization -> authorized, storing
// the payment method reference. Returns ErrInvalidTransition when the pledge
// is not pending.
func (s *Store) AuthorizePledge(ctx context.Context, id uuid.UUID, paymentMethodRef string) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlAuthorizePledge, id, paymentMethodRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pledge{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to authorize pledge", err)
		return Pledge{}, fmt.Errorf("failed to authorize pledge: %w", err)
	}
	return pledge, nil
}

const sqlMarkPledgeCharged = `
UPDATE pledges
SET multiplier = $2, calculated_amount = $3, final_amount = $4, platform_fee = $5,
    charge_ref = $6, status = 'charged', charged_at = NOW(), updated_at = NOW()
WHERE id = $1 AND status = 'authorized' AND charge_ref IS NULL
RETURNING ` + pledgeColumns

// MarkPledgeCharged transitions authorized -> charged and sets the gateway
// charge reference. The charge_ref IS NULL predicate is the at-most-once
// charging gate: a pledge that already carries a charge reference can never
// be marked charged again.
func (s *Store) MarkPledgeCharged(ctx context.Context, id uuid.UUID, multiplier, calculatedAmount,
	finalAmount, platformFee int64, chargeRef string) (Pledge, error) {
	var pledge Pledge
	err := s.db.GetContext(ctx, &pledge, sqlMarkPledgeCharged, id,
		multiplier, calculatedAmount, finalAmount, platformFee, chargeRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pledge{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to mark pledge charged", err)
		return Pledge{}, fmt.Errorf("failed to mark pledge charged: %w", err)
	}
	return pledge, nil
}

const sqlMarkPledgeFailed = `
UPDATE pledges
SET status = 'failed', updated_at = NOW()
WHERE id = $1 AND status IN ('pending_authorization', 'authorized')
`

// MarkPledgeFailed transitions a pledge to failed from either pre-charge
// state. Applying it to a charged pledge is a no-op, preserving forward-only
// status movement.
func (s *Store) MarkPledgeFailed(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkPledgeFailed, id)
	if err != nil {
		s.logger.Error(ctx, "failed to mark pledge failed", err)
		return fmt.Errorf("failed to mark pledge failed: %w", err)
	}
	return nil
}

const sqlMarkPledgeRefunded = `
UPDATE pledges
SET status = 'refunded', refunded_at = NOW(), updated_at = NOW()
WHERE id = $1 AND status = 'charged'
`

// MarkPledgeRefunded transitions charged -> refunded. The only permitted
// backward-looking movement, and only via an explicit refund.
func (s *Store) MarkPledgeRefunded(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkPledgeRefunded, id)
	if err != nil {
		s.logger.Error(ctx, "failed to mark pledge refunded", err)
		return fmt.Errorf("failed to mark pledge refunded: %w", err)
	}
	return nil
}

const sqlMarkPledgeChargedByRef = `
UPDATE pledges
SET status = 'charged', charged_at = COALESCE(charged_at, NOW()), updated_at = NOW()
WHERE charge_ref = $1 AND status IN ('authorized', 'pending_authorization')
`

// MarkPledgeChargedByRef sets charged status on the pledge holding a gateway
// charge reference. Used by the webhook reconciler; idempotent because an
// already-charged pledge no longer matches the predicate.
func (s *Store) MarkPledgeChargedByRef(ctx context.Context, chargeRef string) error {
	_, err := s.db.ExecContext(ctx, sqlMarkPledgeChargedByRef, chargeRef)
	if err != nil {
		s.logger.Error(ctx, "failed to mark pledge charged by ref", err)
		return fmt.Errorf("failed to mark pledge charged by ref: %w", err)
	}
	return nil
}
