package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// FailureCodeGatewayUnavailable marks a charge attempt whose outcome is
// unknown because the gateway could not be reached. These rows do not count
// toward the idempotency attempt number so a retry reuses the same key.
const FailureCodeGatewayUnavailable = "gateway_unavailable"

// CreateChargeParams represents parameters for recording a charge attempt
type CreateChargeParams struct {
	PledgeID       uuid.UUID
	FundraiserID   uuid.UUID
	GrossAmount    int64
	PlatformFee    int64
	DonorTip       int64
	NetAmount      int64
	ChargeRef      *string
	Status         ChargeStatus
	FailureCode    *string
	FailureMessage *string
}

const chargeColumns = `id, pledge_id, fundraiser_id, gross_amount, platform_fee, donor_tip,
       net_amount, charge_ref, status, failure_code, failure_message, refund_amount,
       succeeded_at, failed_at, refunded_at, created_at`

const sqlCreateCharge = `
INSERT INTO charges (pledge_id, fundraiser_id, gross_amount, platform_fee, donor_tip, net_amount,
                     charge_ref, status, failure_code, failure_message, succeeded_at, failed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
        CASE WHEN $8 = 'succeeded' THEN NOW() END,
        CASE WHEN $8 = 'failed' THEN NOW() END)
RETURNING ` + chargeColumns

// CreateCharge records an immutable charge attempt row
func (s *Store) CreateCharge(ctx context.Context, params CreateChargeParams) (Charge, error) {
	var charge Charge
	err := s.db.GetContext(ctx, &charge, sqlCreateCharge,
		params.PledgeID, params.FundraiserID, params.GrossAmount, params.PlatformFee,
		params.DonorTip, params.NetAmount, params.ChargeRef, params.Status,
		params.FailureCode, params.FailureMessage)
	if err != nil {
		s.logger.Error(ctx, "failed to create charge", err)
		return Charge{}, fmt.Errorf("failed to create charge: %w", err)
	}
	return charge, nil
}

const sqlGetChargesByFundraiser = `
SELECT ` + chargeColumns + `
FROM charges
WHERE fundraiser_id = $1
ORDER BY created_at
`

// GetChargesByFundraiser lists every charge attempt for a fundraiser
func (s *Store) GetChargesByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]Charge, error) {
	var charges []Charge
	err := s.db.SelectContext(ctx, &charges, sqlGetChargesByFundraiser, fundraiserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get charges by fundraiser", err)
		return nil, fmt.Errorf("failed to get charges by fundraiser: %w", err)
	}
	return charges, nil
}

const sqlGetChargesByPledge = `
SELECT ` + chargeColumns + `
FROM charges
WHERE pledge_id = $1
ORDER BY created_at
`

// GetChargesByPledge lists the attempt history for one pledge
func (s *Store) GetChargesByPledge(ctx context.Context, pledgeID uuid.UUID) ([]Charge, error) {
	var charges []Charge
	err := s.db.SelectContext(ctx, &charges, sqlGetChargesByPledge, pledgeID)
	if err != nil {
		s.logger.Error(ctx, "failed to get charges by pledge", err)
		return nil, fmt.Errorf("failed to get charges by pledge: %w", err)
	}
	return charges, nil
}

const sqlGetChargeByRef = `
SELECT ` + chargeColumns + `
FROM charges
WHERE charge_ref = $1
`

// GetChargeByRef resolves a gateway charge reference to its attempt row
func (s *Store) GetChargeByRef(ctx context.Context, chargeRef string) (Charge, error) {
	var charge Charge
	err := s.db.GetContext(ctx, &charge, sqlGetChargeByRef, chargeRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Charge{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get charge by ref", err)
		return Charge{}, fmt.Errorf("failed to get charge by ref: %w", err)
	}
	return charge, nil
}

const sqlMarkChargeRefunded = `
UPDATE charges
SET status = 'refunded', refund_amount = $2, refunded_at = NOW()
WHERE charge_ref = $1 AND status = 'succeeded'
`

// MarkChargeRefunded flips a succeeded charge row to refunded. Idempotent;
// an already-refunded row no longer matches.
func (s *Store) MarkChargeRefunded(ctx context.Context, chargeRef string, refundAmount int64) error {
	_, err := s.db.ExecContext(ctx, sqlMarkChargeRefunded, chargeRef, refundAmount)
	if err != nil {
		s.logger.Error(ctx, "failed to mark charge refunded", err)
		return fmt.Errorf("failed to mark charge refunded: %w", err)
	}
	return nil
}

const sqlCountDeclinedCharges = `
SELECT COUNT(*)
FROM charges
WHERE pledge_id = $1
  AND status = 'failed'
  AND (failure_code IS NULL OR failure_code <> 'gateway_unavailable')
`

// CountDeclinedCharges counts prior definitively declined attempts for a
// pledge. The result numbers the next settlement attempt: declines advance
// the idempotency key to a fresh one, while unavailable-gateway rows do not,
// so an ambiguous outcome is retried under the original key.
func (s *Store) CountDeclinedCharges(ctx context.Context, pledgeID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountDeclinedCharges, pledgeID)
	if err != nil {
		s.logger.Error(ctx, "failed to count declined charges", err)
		return 0, fmt.Errorf("failed to count declined charges: %w", err)
	}
	return count, nil
}
