//go:build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderBodies(t *testing.T) {
	t.Run("both parts carry the link", func(t *testing.T) {
		plain, htmlBody := reminderBodies("https://checkout.stripe.com/c/pay/cs_test_1")

		assert.Equal(t,
			"Please complete the payment using the following link to approve your ad:\nhttps://checkout.stripe.com/c/pay/cs_test_1",
			plain)
		assert.Contains(t, htmlBody, "<a href='https://checkout.stripe.com/c/pay/cs_test_1'>Pay Now</a>")
	})

	t.Run("link is escaped in the HTML part", func(t *testing.T) {
		_, htmlBody := reminderBodies("https://pay.example.com/?a=1&b='x'")

		assert.Contains(t, htmlBody, "a=1&amp;b=&#39;x&#39;")
		assert.NotContains(t, htmlBody, "b='x'")
	})
}
