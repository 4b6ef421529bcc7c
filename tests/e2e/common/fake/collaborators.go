//go:build e2e

package fake

import (
	"context"
	"sync"
)

// PaymentLinkIssuer hands out deterministic checkout URLs instead of calling Stripe.
type PaymentLinkIssuer struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *PaymentLinkIssuer) CreatePaymentLink(_ context.Context, _ string, adUnitID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, adUnitID)
	return "https://checkout.stripe.com/c/pay/cs_test_" + adUnitID, nil
}

func (f *PaymentLinkIssuer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *PaymentLinkIssuer) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *PaymentLinkIssuer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.err = nil
}

type Mail struct {
	Recipient string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Notifier keeps sent mail in memory.
type Notifier struct {
	mu   sync.Mutex
	sent []Mail
	err  error
}

func (f *Notifier) Send(_ context.Context, recipient, subject, plainBody, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, Mail{Recipient: recipient, Subject: subject, PlainBody: plainBody, HTMLBody: htmlBody})
	return nil
}

func (f *Notifier) Sent() []Mail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Mail(nil), f.sent...)
}

func (f *Notifier) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *Notifier) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.err = nil
}
