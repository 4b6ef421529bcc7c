package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/pkg/errs"
	"ad-approval-service/internal/usecase/commands"
)

const maxStackLines = 12

// Reconciler runs reconciliation passes forever, waiting Interval after each
// pass finishes. A slow pass delays the next one rather than overlapping it.
type Reconciler struct {
	cmds     commands.ReconcileCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconciler(cmds commands.ReconcileCommands, cfg config.ReconcileConfig, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		cmds:     cmds,
		interval: cfg.Interval,
		logger:   logger.With(slog.String("component", "reconciler")),
	}
}

// Start launches the loop in the background. The start context only bounds startup,
// so the loop gets its own.
func (r *Reconciler) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		r.Run(ctx)
	}()

	r.logger.Info("reconciler started", slog.Duration("interval", r.interval))
	return nil
}

// Stop cancels the loop and waits for the in-flight listing to finish. A reminder that
// has already started is completed, including its timestamp write.
func (r *Reconciler) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	select {
	case <-r.done:
		r.logger.Info("reconciler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run blocks until ctx is cancelled. The first pass starts immediately.
func (r *Reconciler) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			r.runPass(ctx)
			timer.Reset(r.interval)
		}
	}
}

func (r *Reconciler) runPass(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reconcile pass panicked",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	started := time.Now()
	result, err := r.cmds.RunPass(ctx)
	attrs := []any{
		slog.Int("scanned", result.Scanned),
		slog.Int("notified", result.Notified),
		slog.Int("throttled", result.Throttled),
		slog.Int("skipped_invalid", result.SkippedInvalid),
		slog.Int("link_failures", result.LinkFailures),
		slog.Int("notify_failures", result.NotifyFailures),
		slog.Int("write_failures", result.WriteFailures),
		slog.Duration("elapsed", time.Since(started)),
	}

	switch {
	case errors.Is(err, context.Canceled):
		r.logger.Info("reconcile pass interrupted by shutdown", attrs...)
	case err != nil:
		r.logger.Error("reconcile pass failed", append(attrs,
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, maxStackLines)))...)
	default:
		r.logger.Info("reconcile pass complete", attrs...)
	}
}
