package bootstrap

import (
	"log/slog"

	"ad-approval-service/internal/handler/middleware"
	"ad-approval-service/internal/pkg/config"

	"go.uber.org/fx"
)

// LoggerModule builds the process logger once; the request middleware and the
// background reconciler share it.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
