package components

import (
	"ad-approval-service/internal/handler"
	"ad-approval-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentWebhookHandler,
		api.NewAdListingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
