package commands

import (
	"context"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/internal/domain/payment"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

// AdListingRepository is the Ad Store as both flows see it. Updates are per-row atomic.
type AdListingRepository interface {
	FindUnapproved(ctx context.Context) ([]*adlisting.AdListing, error)
	FindByAdUnitID(ctx context.Context, adUnitID string) ([]*adlisting.AdListing, error)
	UpdateLastNotified(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkApproved(ctx context.Context, id uuid.UUID) error
}

type PaymentLinkIssuer interface {
	CreatePaymentLink(ctx context.Context, title, adUnitID string) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, recipient, subject, plainBody, htmlBody string) error
}

// EventVerifier checks the provider signature and parses the payload.
// Errors are marked with payment.ErrInvalidSignature or payment.ErrMalformedEvent.
type EventVerifier interface {
	Verify(payload []byte, signature string) (payment.Event, error)
}

type PaymentEventLedger interface {
	Record(ctx context.Context, ev payment.Event, matched int, processedAt time.Time) (bool, error)
}
