// Package fees computes the money split for a charge: the capped multiplier
// arithmetic for performance pledges, the platform fee, and the donor tip.
// Everything is integer cents; results are deterministic so a charge can be
// re-derived for audit.
package fees

// Input describes one charge to be broken down. Multiplier is nil for
// immediate donations, set for performance pledges at settlement. CapAmount
// is nil when the donor did not set a cap.
type Input struct {
	FeePercentage int // 0 to 100
	BaseAmount    int64
	Multiplier    *int64
	CapAmount     *int64
	DonorTip      int64
}

// Breakdown is the computed money split.
type Breakdown struct {
	CalculatedAmount int64 // base times multiplier, capped
	PlatformFee      int64
	DonorTip         int64
	FinalAmount      int64 // calculated plus tip; the gross charge
	NetAmount        int64 // final minus platform fee; what the team receives
}

// Compute breaks an amount down into the charged total, the platform fee and
// the team's net. The donor tip is added on top of the calculated amount and
// is never subject to the platform fee, so it passes through to the net.
func Compute(in Input) Breakdown {
	calculated := in.BaseAmount
	if in.Multiplier != nil {
		calculated = in.BaseAmount * (*in.Multiplier)
		if in.CapAmount != nil && calculated > *in.CapAmount {
			calculated = *in.CapAmount
		}
	}
	if calculated < 0 {
		calculated = 0
	}

	fee := roundedFee(calculated, in.FeePercentage)
	final := calculated + in.DonorTip

	return Breakdown{
		CalculatedAmount: calculated,
		PlatformFee:      fee,
		DonorTip:         in.DonorTip,
		FinalAmount:      final,
		NetAmount:        final - fee,
	}
}

// roundedFee is round-half-up on the cent boundary. Integer arithmetic only,
// so the same inputs always produce the same fee.
func roundedFee(amount int64, feePercentage int) int64 {
	if feePercentage <= 0 || amount <= 0 {
		return 0
	}
	if feePercentage > 100 {
		feePercentage = 100
	}
	return (amount*int64(feePercentage) + 50) / 100
}
