//go:build unit

package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"ad-approval-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSMTPNotifier_Send(t *testing.T) {
	cfg := config.SMTPConfig{Username: "noreply@example.com"}
	link := "https://checkout.stripe.com/c/pay/cs_test_1"

	t.Run("sends a plain and html alternative from the smtp user", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewSMTPNotifier(sender, cfg)

		err := n.Send(context.Background(), "a@x.com", "Payment Required for Ad Approval",
			"pay here:\n"+link, "<a href='"+link+"'>Pay Now</a>")

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		raw := render(t, sender.sent[0])
		assert.Contains(t, raw, "From: <noreply@example.com>")
		assert.Contains(t, raw, "To: <a@x.com>")
		assert.Contains(t, raw, "Subject: Payment Required for Ad Approval")
		assert.Contains(t, raw, "multipart/alternative")
		assert.Contains(t, raw, "text/plain")
		assert.Contains(t, raw, "text/html")
		assert.Contains(t, raw, "Pay Now")
		assert.Contains(t, raw, link)
	})

	t.Run("explicit from address wins over the username", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewSMTPNotifier(sender, config.SMTPConfig{Username: "login", From: "billing@example.com"})

		require.NoError(t, n.Send(context.Background(), "a@x.com", "s", "p", "h"))

		assert.Contains(t, render(t, sender.sent[0]), "From: <billing@example.com>")
	})

	t.Run("invalid recipient fails before dialing", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewSMTPNotifier(sender, cfg)

		err := n.Send(context.Background(), "not an address", "s", "p", "h")

		require.Error(t, err)
		assert.Empty(t, sender.sent)
	})

	t.Run("transport failure is returned", func(t *testing.T) {
		n := NewSMTPNotifier(&fakeSender{err: errors.New("535 authentication failed")}, cfg)

		err := n.Send(context.Background(), "a@x.com", "s", "p", "h")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "535 authentication failed")
	})
}

func TestNewSMTPClient(t *testing.T) {
	c, err := NewSMTPClient(config.SMTPConfig{Server: "smtp.example.com", Port: 587, Username: "u", Password: "p"})

	require.NoError(t, err)
	assert.NotNil(t, c)
}
