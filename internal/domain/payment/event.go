package payment

import (
	"errors"
	"time"
)

type EventType string

// Completion is the only type that changes listing state; everything else is acknowledged and dropped.
const (
	EventTypeCheckoutCompleted EventType = "checkout.session.completed"
)

const ProviderStripe = "stripe"

const (
	MetadataAdID    = "ad_id"
	MetadataAdTitle = "ad_title"

	// UnknownAdUnitID stands in for a completion event whose metadata lost the ad id.
	UnknownAdUnitID = "Unknown"
)

// Event is a verified, parsed notification from the payment provider.
type Event struct {
	ID        string
	Provider  string
	Type      EventType
	SessionID string
	AdUnitID  string
	AdTitle   string
	CreatedAt time.Time
}

func (e Event) IsCompletion() bool {
	return e.Type == EventTypeCheckoutCompleted
}

// AdUnitIDFromMetadata reads the correlation id embedded at session creation.
func AdUnitIDFromMetadata(md map[string]string) string {
	if id, ok := md[MetadataAdID]; ok && id != "" {
		return id
	}
	return UnknownAdUnitID
}

// Metadata is what gets embedded into a payment session so completion events can be correlated.
func Metadata(title, adUnitID string) map[string]string {
	return map[string]string{
		MetadataAdTitle: title,
		MetadataAdID:    adUnitID,
	}
}

var (
	ErrInvalidSignature = errors.New("payment event signature verification failed")
	ErrMalformedEvent   = errors.New("payment event payload is malformed")
)
