package stripe

import (
	"encoding/json"
	"errors"
	"time"

	"ad-approval-service/internal/domain/payment"
	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(cfg config.StripeConfig) *WebhookVerifier {
	return &WebhookVerifier{secret: cfg.EndpointSecret}
}

// Verify checks the Stripe-Signature header and converts the event.
// Session metadata is only read for completion events.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (payment.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureErr(err) {
			return payment.Event{}, errs.Mark(err, payment.ErrInvalidSignature)
		}
		return payment.Event{}, errs.Mark(err, payment.ErrMalformedEvent)
	}

	out := payment.Event{
		ID:        ev.ID,
		Provider:  payment.ProviderStripe,
		Type:      payment.EventType(ev.Type),
		CreatedAt: time.Unix(ev.Created, 0).UTC(),
	}
	if !out.IsCompletion() {
		return out, nil
	}

	if ev.Data == nil || len(ev.Data.Raw) == 0 {
		return payment.Event{}, errs.Mark(errs.Newf("event %s has no data object", ev.ID), payment.ErrMalformedEvent)
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &sess); err != nil {
		return payment.Event{}, errs.Mark(errs.Wrapf(err, "event %s data is not a checkout session", ev.ID), payment.ErrMalformedEvent)
	}

	out.SessionID = sess.ID
	out.AdUnitID = payment.AdUnitIDFromMetadata(sess.Metadata)
	out.AdTitle = sess.Metadata[payment.MetadataAdTitle]
	return out, nil
}

func isSignatureErr(err error) bool {
	return errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrTooOld)
}
