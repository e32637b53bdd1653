package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"pledgestack/internal/store"

	"github.com/google/uuid"
)

var pledgeCSVHeader = []string{
	"pledge_id", "donor_name", "donor_email", "kind", "base_amount", "cap_amount",
	"multiplier", "calculated_amount", "final_amount", "platform_fee", "donor_tip",
	"status", "authorized_at", "charged_at", "created_at",
}

var chargeCSVHeader = []string{
	"charge_id", "pledge_id", "gross_amount", "platform_fee", "donor_tip", "net_amount",
	"status", "failure_code", "refund_amount", "succeeded_at", "created_at",
}

// ExportPledgesCSV streams every pledge on a fundraiser as CSV. Amounts are
// in cents, so spreadsheet rounding never touches money.
func (p *ReportProcessor) ExportPledgesCSV(ctx context.Context, callerID, fundraiserID uuid.UUID,
	w io.Writer) error {
	if err := p.authorize(ctx, callerID, fundraiserID); err != nil {
		return err
	}

	pledges, err := p.store.GetPledgesByFundraiser(ctx, fundraiserID)
	if err != nil {
		p.logger.Error(ctx, "failed to load pledges for export", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(pledgeCSVHeader); err != nil {
		return err
	}
	for _, pledge := range pledges {
		record := []string{
			pledge.ID.String(),
			pledge.DonorName,
			pledge.DonorEmail,
			string(pledge.Kind),
			strconv.FormatInt(pledge.BaseAmount, 10),
			optionalInt(pledge.CapAmount),
			optionalInt(pledge.Multiplier),
			optionalInt(pledge.CalculatedAmount),
			strconv.FormatInt(pledge.FinalAmount, 10),
			strconv.FormatInt(pledge.PlatformFee, 10),
			strconv.FormatInt(pledge.DonorTip, 10),
			string(pledge.Status),
			optionalTime(pledge.AuthorizedAt),
			optionalTime(pledge.ChargedAt),
			pledge.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportChargesCSV streams every settlement attempt on a fundraiser as CSV,
// declines and refunds included.
func (p *ReportProcessor) ExportChargesCSV(ctx context.Context, callerID, fundraiserID uuid.UUID,
	w io.Writer) error {
	if err := p.authorize(ctx, callerID, fundraiserID); err != nil {
		return err
	}

	charges, err := p.store.GetChargesByFundraiser(ctx, fundraiserID)
	if err != nil {
		p.logger.Error(ctx, "failed to load charges for export", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(chargeCSVHeader); err != nil {
		return err
	}
	for _, charge := range charges {
		record := []string{
			charge.ID.String(),
			charge.PledgeID.String(),
			strconv.FormatInt(charge.GrossAmount, 10),
			strconv.FormatInt(charge.PlatformFee, 10),
			strconv.FormatInt(charge.DonorTip, 10),
			strconv.FormatInt(charge.NetAmount, 10),
			string(charge.Status),
			optionalString(charge.FailureCode),
			optionalInt(charge.RefundAmount),
			optionalTime(charge.SucceededAt),
			charge.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (p *ReportProcessor) authorize(ctx context.Context, callerID, fundraiserID uuid.UUID) error {
	fundraiser, err := p.store.GetFundraiserByID(ctx, fundraiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFundraiserNotFound
		}
		return err
	}

	allowed, err := p.store.CanManageTeam(ctx, callerID, fundraiser.TeamID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrNotAuthorized
	}
	return nil
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optionalTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}
