//go:build e2e

package webhook_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/tests/common/builder"
	"ad-approval-service/tests/common/dbtest"
	"ad-approval-service/tests/common/httptest"
	"ad-approval-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
)

const webhookURL = "/webhook"

type WebhookSuite struct {
	e2e.SharedSuite
}

func (s *WebhookSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WebhookSuite))
}

func completedEvent(eventID, adUnitID string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": "checkout.session.completed",
  "created": 1704067200,
  "data": {"object": {"id": "cs_test_1", "object": "checkout.session",
    "metadata": {"ad_id": %q, "ad_title": "Summer Sale Banner"}}}
}`, eventID, adUnitID))
}

func (s *WebhookSuite) signed(payload []byte) map[string]string {
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    s.Config.Stripe.EndpointSecret,
		Timestamp: time.Now(),
	})
	return map[string]string{"Stripe-Signature": sp.Header}
}

func (s *WebhookSuite) TestCompletedCheckout() {
	s.Run("Normal case: completion approves and activates the listing", func() {
		t := s.T()
		id := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad1"))
		other := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad2"))

		payload := completedEvent("evt_e2e_1", "ad1")
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))

		httptest.AssertWebhookAck(t, w, http.StatusOK, true)
		row := dbtest.GetAdListing(t, s.DB, id)
		require.True(t, row.IsApproved)
		require.Equal(t, string(adlisting.StatusActive), row.Status)
		require.False(t, dbtest.GetAdListing(t, s.DB, other).IsApproved, "unrelated listing must not change")
		require.Equal(t, 1, dbtest.CountPaymentEvents(t, s.DB, "evt_e2e_1"))
	})

	s.Run("Normal case: redelivery leaves the same state and one ledger row", func() {
		t := s.T()
		id := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad1"))
		payload := completedEvent("evt_e2e_2", "ad1")

		for range 2 {
			w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))
			httptest.AssertWebhookAck(t, w, http.StatusOK, true)
		}

		row := dbtest.GetAdListing(t, s.DB, id)
		require.True(t, row.IsApproved)
		require.Equal(t, string(adlisting.StatusActive), row.Status)
		require.Equal(t, 1, dbtest.CountPaymentEvents(t, s.DB, "evt_e2e_2"))
	})

	s.Run("Normal case: all listings sharing the ad unit id are approved", func() {
		t := s.T()
		first := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("dup"))
		second := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("dup"))

		payload := completedEvent("evt_e2e_3", "dup")
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))

		httptest.AssertWebhookAck(t, w, http.StatusOK, true)
		require.True(t, dbtest.GetAdListing(t, s.DB, first).IsApproved)
		require.True(t, dbtest.GetAdListing(t, s.DB, second).IsApproved)
	})

	s.Run("Normal case: unknown ad unit id is acknowledged without changes", func() {
		t := s.T()
		id := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad1"))

		payload := completedEvent("evt_e2e_4", "nope")
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))

		httptest.AssertWebhookAck(t, w, http.StatusOK, true)
		require.False(t, dbtest.GetAdListing(t, s.DB, id).IsApproved)
	})

	s.Run("Normal case: other event types are acknowledged without changes", func() {
		t := s.T()
		id := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad1"))

		payload := []byte(`{"id":"evt_e2e_5","object":"event","type":"payment_intent.created","created":1704067200,
"data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"ad_id":"ad1"}}}}`)
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))

		httptest.AssertWebhookAck(t, w, http.StatusOK, true)
		require.False(t, dbtest.GetAdListing(t, s.DB, id).IsApproved)
		require.Equal(t, 0, dbtest.CountPaymentEvents(t, s.DB, "evt_e2e_5"))
	})
}

func (s *WebhookSuite) TestRejectedEvents() {
	s.Run("Error case: bad signature returns 400 and changes nothing", func() {
		t := s.T()
		id := dbtest.InsertAdListing(t, s.DB, builder.NewAdListingBuilder().WithAdUnitID("ad1"))

		payload := completedEvent("evt_e2e_6", "ad1")
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload,
			map[string]string{"Stripe-Signature": "t=1704067200,v1=0000"})

		httptest.AssertWebhookAck(t, w, http.StatusBadRequest, false)
		require.False(t, dbtest.GetAdListing(t, s.DB, id).IsApproved)
	})

	s.Run("Error case: missing signature returns 400", func() {
		t := s.T()
		payload := completedEvent("evt_e2e_7", "ad1")

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, nil)

		httptest.AssertWebhookAck(t, w, http.StatusBadRequest, false)
	})

	s.Run("Error case: signed but malformed body returns 400", func() {
		t := s.T()
		payload := []byte(`{"id": "evt_e2e_8", "type": `)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, s.signed(payload))

		httptest.AssertWebhookAck(t, w, http.StatusBadRequest, false)
	})
}
