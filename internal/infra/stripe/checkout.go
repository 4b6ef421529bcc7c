package stripe

import (
	"context"
	"errors"
	"log/slog"

	"ad-approval-service/internal/domain/payment"
	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const lineItemPrefix = "Payment for ad: "

// NewStripeClient builds the API client shared by the issuer. A nil backends value uses Stripe's defaults.
func NewStripeClient(cfg config.StripeConfig, backends *stripe.Backends) *client.API {
	sc := &client.API{}
	sc.Init(cfg.APIKey, backends)
	return sc
}

type CheckoutIssuer struct {
	sc     *client.API
	cfg    config.StripeConfig
	logger *slog.Logger
}

func NewCheckoutIssuer(sc *client.API, cfg config.StripeConfig, logger *slog.Logger) *CheckoutIssuer {
	return &CheckoutIssuer{sc: sc, cfg: cfg, logger: logger}
}

// CreatePaymentLink opens a one-off checkout session for the listing and returns its hosted URL.
func (i *CheckoutIssuer) CreatePaymentLink(ctx context.Context, title, adUnitID string) (string, error) {
	params := i.buildSessionParams(title, adUnitID)
	params.Context = ctx

	sess, err := i.sc.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			i.logger.Debug("stripe rejected checkout session",
				slog.String("ad_unit_id", adUnitID),
				slog.String("code", string(stripeErr.Code)),
				slog.Int("http_status", stripeErr.HTTPStatusCode))
		}
		return "", errs.Wrapf(err, "failed to create checkout session for ad %s", adUnitID)
	}
	if sess.URL == "" {
		return "", errs.Newf("checkout session %s has no url", sess.ID)
	}

	return sess.URL, nil
}

func (i *CheckoutIssuer) buildSessionParams(title, adUnitID string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(i.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(lineItemPrefix + title),
					},
					UnitAmount: stripe.Int64(i.cfg.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(i.cfg.SuccessURL),
		CancelURL:  stripe.String(i.cfg.CancelURL),
	}
	for k, v := range payment.Metadata(title, adUnitID) {
		params.AddMetadata(k, v)
	}
	return params
}
