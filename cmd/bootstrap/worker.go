package bootstrap

import (
	"log/slog"

	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/usecase/commands"
	"ad-approval-service/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReconciler,
	),
	fx.Invoke(RegisterReconciler),
)

func NewReconciler(cmds commands.ReconcileCommands, cfg config.Config, logger *slog.Logger) *worker.Reconciler {
	return worker.NewReconciler(cmds, cfg.Reconcile, logger)
}

func RegisterReconciler(lc fx.Lifecycle, r *worker.Reconciler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Reconcile.Enabled {
		logger.Info("reconciler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: r.Start,
		OnStop:  r.Stop,
	})
}
