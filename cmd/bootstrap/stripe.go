package bootstrap

import (
	"log/slog"

	stripeinfra "ad-approval-service/internal/infra/stripe"
	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82/client"
	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		NewStripeClient,
		fx.Annotate(
			NewCheckoutIssuer,
			fx.As(new(commands.PaymentLinkIssuer)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(commands.EventVerifier)),
		),
	),
)

func NewStripeClient(cfg config.Config) *client.API {
	return stripeinfra.NewStripeClient(cfg.Stripe, nil)
}

func NewCheckoutIssuer(sc *client.API, cfg config.Config, logger *slog.Logger) *stripeinfra.CheckoutIssuer {
	return stripeinfra.NewCheckoutIssuer(sc, cfg.Stripe, logger)
}

func NewWebhookVerifier(cfg config.Config) *stripeinfra.WebhookVerifier {
	return stripeinfra.NewWebhookVerifier(cfg.Stripe)
}
