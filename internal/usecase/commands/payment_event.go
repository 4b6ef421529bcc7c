package commands

import (
	"context"
	"log/slog"

	"ad-approval-service/internal/domain/payment"
	"ad-approval-service/internal/pkg/clock"
	"ad-approval-service/internal/pkg/metrics"
)

//go:generate mockgen -source=payment_event.go -destination=../../../tests/mock/commands/mock_payment_event.go -package=commandsmock

// ApplyResult describes what an accepted event did. Store failures are reported here,
// never as an error, because the event itself was valid.
type ApplyResult struct {
	Event        payment.Event
	Relevant     bool
	Matched      int
	Approved     int
	WriteErrors  int
	LookupFailed bool
	Replayed     bool
}

type PaymentEventCommands interface {
	// Apply verifies and applies one inbound event. The returned error is non-nil only
	// when the event was rejected (see payment.ErrInvalidSignature, payment.ErrMalformedEvent).
	Apply(ctx context.Context, payload []byte, signature string) (*ApplyResult, error)
}

type paymentEventCommandsImpl struct {
	verifier EventVerifier
	ads      AdListingRepository
	ledger   PaymentEventLedger
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentEventCommands(
	verifier EventVerifier,
	ads AdListingRepository,
	ledger PaymentEventLedger,
	clock clock.Clock,
	logger *slog.Logger,
) PaymentEventCommands {
	return &paymentEventCommandsImpl{
		verifier: verifier,
		ads:      ads,
		ledger:   ledger,
		clock:    clock,
		logger:   logger,
	}
}

func (p *paymentEventCommandsImpl) Apply(ctx context.Context, payload []byte, signature string) (*ApplyResult, error) {
	ev, err := p.verifier.Verify(payload, signature)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("rejected").Inc()
		p.logger.Warn("rejected payment event", slog.String("error", err.Error()))
		return nil, err
	}

	logger := p.logger.With(
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
	)
	result := &ApplyResult{Event: ev, Relevant: ev.IsCompletion()}

	if !result.Relevant {
		metrics.PaymentEvents.WithLabelValues("ignored").Inc()
		logger.Debug("ignoring payment event type")
		return result, nil
	}

	logger = logger.With(slog.String("ad_unit_id", ev.AdUnitID))

	listings, err := p.ads.FindByAdUnitID(ctx, ev.AdUnitID)
	if err != nil {
		result.LookupFailed = true
		metrics.PaymentEvents.WithLabelValues("lookup_failed").Inc()
		logger.Error("failed to look up listings for completed payment", slog.String("error", err.Error()))
		return result, nil
	}

	result.Matched = len(listings)
	switch {
	case result.Matched == 0:
		logger.Warn("completed payment matched no listing")
	case result.Matched > 1:
		logger.Warn("completed payment matched several listings, approving all", slog.Int("matched", result.Matched))
	}

	for _, listing := range listings {
		if !listing.Status().IsKnown() {
			logger.Warn("approving listing with unrecognized status",
				slog.String("listing_id", listing.ID().String()),
				slog.String("previous_status", listing.Status().String()))
		}
		changed := listing.Approve()
		// The write is unconditional so a redelivery repairs a listing whose earlier update was lost.
		if err := p.ads.MarkApproved(ctx, listing.ID()); err != nil {
			result.WriteErrors++
			logger.Error("failed to approve listing",
				slog.String("listing_id", listing.ID().String()),
				slog.String("error", err.Error()))
			continue
		}
		if changed {
			result.Approved++
			metrics.ListingsApproved.Inc()
		}
		logger.Info("ad has been approved and activated",
			slog.String("listing_id", listing.ID().String()),
			slog.Bool("changed", changed))
	}

	if result.WriteErrors > 0 {
		metrics.PaymentEvents.WithLabelValues("partial").Inc()
		return result, nil
	}

	recorded, err := p.ledger.Record(ctx, ev, result.Matched, p.clock.Now())
	if err != nil {
		logger.Warn("failed to record processed payment event", slog.String("error", err.Error()))
	}
	result.Replayed = err == nil && !recorded
	if result.Replayed {
		logger.Info("payment event was already processed")
	}

	metrics.PaymentEvents.WithLabelValues("applied").Inc()
	return result, nil
}
