package gateway

import "fmt"

// DeclinedError is a definitive gateway rejection of a charge. The attempt
// is over; retrying the same request will not succeed.
type DeclinedError struct {
	Code    string
	Message string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("charge declined (%s): %s", e.Code, e.Message)
}

// UnavailableError means the gateway could not be reached or answered with a
// server error. The outcome of the request is unknown and it may be retried
// under the same idempotency key.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("gateway unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// AccountStatus is the capability snapshot of a connected merchant account.
type AccountStatus struct {
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

// ChargeParams describes one off-session destination charge against a stored
// payment method.
type ChargeParams struct {
	CustomerRef        string
	PaymentMethodRef   string
	Amount             int64 // cents
	ApplicationFee     int64 // cents, kept by the platform
	ConnectedAccountID string
	IdempotencyKey     string
	Description        string
	Metadata           map[string]string
}

// ImmediateChargeParams describes a client-confirmed destination charge for
// a direct donation.
type ImmediateChargeParams struct {
	CustomerRef        string
	Amount             int64
	ApplicationFee     int64
	ConnectedAccountID string
	Description        string
	Metadata           map[string]string
}
