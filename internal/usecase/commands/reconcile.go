package commands

import (
	"context"
	"log/slog"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/internal/pkg/clock"
	"ad-approval-service/internal/pkg/errs"
	"ad-approval-service/internal/pkg/metrics"
)

//go:generate mockgen -source=reconcile.go -destination=../../../tests/mock/commands/mock_reconcile.go -package=commandsmock

var (
	ErrListingScanFailed       = errs.New("failed to scan unapproved listings")
	ErrPaymentLinkFailed       = errs.New("payment link creation failed")
	ErrNotificationFailed      = errs.New("payment reminder dispatch failed")
	ErrLastNotifiedWriteFailed = errs.New("reminder sent but last notification time not stored")
)

type reminderOutcome string

const (
	outcomeNotified     reminderOutcome = "notified"
	outcomeThrottled    reminderOutcome = "throttled"
	outcomeInvalid      reminderOutcome = "invalid"
	outcomeLinkFailed   reminderOutcome = "link_failed"
	outcomeNotifyFailed reminderOutcome = "notify_failed"
	outcomeWriteFailed  reminderOutcome = "write_failed"
	outcomeStopped      reminderOutcome = "stopped"
)

// pass result labels
const (
	passResultOK          = "ok"
	passResultScanFailure = "scan_failed"
	passResultCancelled   = "cancelled"
)

// PassResult counts what one reconciliation pass did with each unapproved listing.
type PassResult struct {
	Scanned        int
	Notified       int
	Throttled      int
	SkippedInvalid int
	LinkFailures   int
	NotifyFailures int
	WriteFailures  int
}

func (p *PassResult) record(o reminderOutcome) {
	switch o {
	case outcomeNotified:
		p.Notified++
	case outcomeThrottled:
		p.Throttled++
	case outcomeInvalid:
		p.SkippedInvalid++
	case outcomeLinkFailed:
		p.LinkFailures++
	case outcomeNotifyFailed:
		p.NotifyFailures++
	case outcomeWriteFailed:
		p.WriteFailures++
	}
}

type ReconcileCommands interface {
	// RunPass scans unapproved listings once. Per-listing failures are logged and
	// counted; only a failed scan or cancellation returns an error.
	RunPass(ctx context.Context) (PassResult, error)
}

type reconcileCommandsImpl struct {
	ads      AdListingRepository
	issuer   PaymentLinkIssuer
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReconcileCommands(
	ads AdListingRepository,
	issuer PaymentLinkIssuer,
	notifier Notifier,
	clock clock.Clock,
	logger *slog.Logger,
) ReconcileCommands {
	return &reconcileCommandsImpl{
		ads:      ads,
		issuer:   issuer,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (r *reconcileCommandsImpl) RunPass(ctx context.Context) (PassResult, error) {
	started := time.Now()
	defer func() {
		metrics.ReconcileDuration.Observe(time.Since(started).Seconds())
	}()

	now := r.clock.Now()

	listings, err := r.ads.FindUnapproved(ctx)
	if err != nil {
		metrics.ReconcilePasses.WithLabelValues(passResultScanFailure).Inc()
		return PassResult{}, errs.Mark(err, ErrListingScanFailed)
	}

	// Shutdown is observed between listings only; a reminder that has started runs to its write back.
	work := context.WithoutCancel(ctx)

	result := PassResult{Scanned: len(listings)}
	for _, listing := range listings {
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.ReconcileListings.WithLabelValues(string(outcomeStopped)).Add(float64(result.Scanned - result.handled()))
			metrics.ReconcilePasses.WithLabelValues(passResultCancelled).Inc()
			return result, ctxErr
		}

		outcome := r.remind(work, listing, now)
		metrics.ReconcileListings.WithLabelValues(string(outcome)).Inc()
		result.record(outcome)
	}

	metrics.ReconcilePasses.WithLabelValues(passResultOK).Inc()
	return result, nil
}

func (p PassResult) handled() int {
	return p.Notified + p.Throttled + p.SkippedInvalid + p.LinkFailures + p.NotifyFailures + p.WriteFailures
}

func (r *reconcileCommandsImpl) remind(ctx context.Context, listing *adlisting.AdListing, now time.Time) reminderOutcome {
	logger := r.logger.With(
		slog.String("listing_id", listing.ID().String()),
		slog.String("ad_unit_id", listing.AdUnitID()),
		slog.String("title", listing.Title()),
	)

	if err := listing.CheckCorrelation(); err != nil {
		logger.Warn("skipping listing with missing correlation fields",
			slog.String("kind", "data_quality"),
			slog.String("reason", err.Error()))
		return outcomeInvalid
	}

	if !listing.ReminderDue(now) {
		logger.Debug("reminder sent recently, skipping",
			slog.Time("last_notified_at", *listing.LastNotifiedAt()))
		return outcomeThrottled
	}

	link, err := r.issuer.CreatePaymentLink(ctx, listing.Title(), listing.AdUnitID())
	if err != nil {
		err = errs.Mark(err, ErrPaymentLinkFailed)
		logger.Error("failed to create payment link, will retry next cycle", slog.String("error", err.Error()))
		return outcomeLinkFailed
	}

	plain, htmlBody := reminderBodies(link)
	if err := r.notifier.Send(ctx, listing.AdminContact(), reminderSubject, plain, htmlBody); err != nil {
		err = errs.Mark(err, ErrNotificationFailed)
		logger.Error("failed to send payment reminder, will retry next cycle",
			slog.String("recipient", listing.AdminContact()),
			slog.String("error", err.Error()))
		return outcomeNotifyFailed
	}

	listing.MarkNotified(now)
	if err := r.ads.UpdateLastNotified(ctx, listing.ID(), now); err != nil {
		err = errs.Mark(err, ErrLastNotifiedWriteFailed)
		logger.Error("payment reminder sent but timestamp not stored, listing may be reminded again next cycle",
			slog.String("recipient", listing.AdminContact()),
			slog.String("error", err.Error()))
		return outcomeWriteFailed
	}

	logger.Info("payment link sent", slog.String("recipient", listing.AdminContact()))
	return outcomeNotified
}
