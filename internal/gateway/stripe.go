package gateway

import (
	"context"
	"errors"

	"pledgestack/internal/observability"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/account"
	"github.com/stripe/stripe-go/v79/accountlink"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/paymentmethod"
	"github.com/stripe/stripe-go/v79/refund"
	"github.com/stripe/stripe-go/v79/setupintent"
)

// StripeGateway is the Stripe-backed payment gateway. All charges are
// destination charges: funds settle to the team's connected account and the
// platform keeps the application fee.
type StripeGateway struct {
	logger *observability.Logger
}

// New configures the Stripe client key and returns a gateway
func New(stripeKey string, logger *observability.Logger) *StripeGateway {
	stripe.Key = stripeKey
	return &StripeGateway{logger: logger}
}

// classify splits gateway failures into definitive declines and ambiguous
// unavailability. Anything that is not a well-formed Stripe error, or that
// Stripe answered with a server error, counts as unavailable because the
// charge may still have gone through.
func classify(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &UnavailableError{Err: err}
	}
	if stripeErr.HTTPStatusCode >= 500 || stripeErr.Type == stripe.ErrorTypeAPI {
		return &UnavailableError{Err: err}
	}
	code := string(stripeErr.Code)
	if stripeErr.DeclineCode != "" {
		code = string(stripeErr.DeclineCode)
	}
	return &DeclinedError{Code: code, Message: stripeErr.Msg}
}

// CreateCustomer registers a donor with the gateway
func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	c, err := customer.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to create stripe customer", err)
		return "", classify(err)
	}
	return c.ID, nil
}

// CreateSetupIntent opens a card-collection session that stores a payment
// method for later off-session charging on behalf of the connected account.
func (g *StripeGateway) CreateSetupIntent(ctx context.Context, customerRef, connectedAccountID string) (string, string, error) {
	params := &stripe.SetupIntentParams{
		Customer:   stripe.String(customerRef),
		OnBehalfOf: stripe.String(connectedAccountID),
		Usage:      stripe.String("off_session"),
		AutomaticPaymentMethods: &stripe.SetupIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	si, err := setupintent.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to create setup intent", err)
		return "", "", classify(err)
	}
	return si.ID, si.ClientSecret, nil
}

// GetSetupIntentPaymentMethod returns the payment method captured by a
// succeeded setup intent, or empty when the intent has not succeeded yet.
func (g *StripeGateway) GetSetupIntentPaymentMethod(ctx context.Context, setupIntentRef string) (string, error) {
	si, err := setupintent.Get(setupIntentRef, nil)
	if err != nil {
		g.logger.Error(ctx, "failed to get setup intent", err)
		return "", classify(err)
	}
	if si.Status != stripe.SetupIntentStatusSucceeded || si.PaymentMethod == nil {
		return "", nil
	}
	return si.PaymentMethod.ID, nil
}

// AttachPaymentMethod binds a collected payment method to a customer so it
// can be charged off-session later. Attaching a method already attached to
// the same customer succeeds without side effects.
func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, methodRef, customerRef string) error {
	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerRef),
	}
	if _, err := paymentmethod.Attach(methodRef, params); err != nil {
		g.logger.Error(ctx, "failed to attach payment method", err)
		return classify(err)
	}
	return nil
}

// CreateImmediateChargeIntent opens a client-confirmed payment intent for a
// direct donation. Returns the intent ID and the client secret the donor's
// browser confirms with.
func (g *StripeGateway) CreateImmediateChargeIntent(ctx context.Context, p ImmediateChargeParams) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Customer: stripe.String(p.CustomerRef),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.ConnectedAccountID),
		},
		ApplicationFeeAmount: stripe.Int64(p.ApplicationFee),
		Description:          stripe.String(p.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to create payment intent", err)
		return "", "", classify(err)
	}
	return pi.ID, pi.ClientSecret, nil
}

// ChargeStoredMethod confirms an off-session destination charge against a
// stored payment method. The caller's idempotency key makes a repeated call
// return the original intent instead of charging again.
func (g *StripeGateway) ChargeStoredMethod(ctx context.Context, p ChargeParams) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(p.Amount),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		Customer:      stripe.String(p.CustomerRef),
		PaymentMethod: stripe.String(p.PaymentMethodRef),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.ConnectedAccountID),
		},
		ApplicationFeeAmount: stripe.Int64(p.ApplicationFee),
		Description:          stripe.String(p.Description),
	}
	params.SetIdempotencyKey(p.IdempotencyKey)
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to charge stored payment method", err)
		return "", classify(err)
	}
	return pi.ID, nil
}

// Refund reverses a charge. A nil amount refunds the full charge.
func (g *StripeGateway) Refund(ctx context.Context, chargeRef string, amount *int64) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(chargeRef),
	}
	if amount != nil {
		params.Amount = stripe.Int64(*amount)
	}
	r, err := refund.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to refund charge", err)
		return "", classify(err)
	}
	return r.ID, nil
}

// CreateConnectAccount registers an Express connected account for a team
func (g *StripeGateway) CreateConnectAccount(ctx context.Context, email string) (string, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	a, err := account.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to create connect account", err)
		return "", classify(err)
	}
	return a.ID, nil
}

// CreateAccountLink opens a hosted onboarding session for a connected account
func (g *StripeGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	link, err := accountlink.New(params)
	if err != nil {
		g.logger.Error(ctx, "failed to create account link", err)
		return "", classify(err)
	}
	return link.URL, nil
}

// GetAccountStatus reads the capability flags of a connected account
func (g *StripeGateway) GetAccountStatus(ctx context.Context, accountID string) (AccountStatus, error) {
	a, err := account.GetByID(accountID, nil)
	if err != nil {
		g.logger.Error(ctx, "failed to get connect account", err)
		return AccountStatus{}, classify(err)
	}
	return AccountStatus{
		DetailsSubmitted: a.DetailsSubmitted,
		ChargesEnabled:   a.ChargesEnabled,
		PayoutsEnabled:   a.PayoutsEnabled,
	}, nil
}
