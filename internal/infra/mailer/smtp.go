package mailer

import (
	"context"

	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

// Sender is the part of *mail.Client the notifier uses.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// NewSMTPClient dials lazily; nothing is sent until Send is called.
func NewSMTPClient(cfg config.SMTPConfig) (*mail.Client, error) {
	c, err := mail.NewClient(cfg.Server,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return c, nil
}

type SMTPNotifier struct {
	sender Sender
	from   string
}

func NewSMTPNotifier(sender Sender, cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{sender: sender, from: cfg.Sender()}
}

// Send delivers one multipart/alternative message. Each call opens its own session.
func (n *SMTPNotifier) Send(ctx context.Context, recipient, subject, plainBody, htmlBody string) error {
	msg, err := n.buildMessage(recipient, subject, plainBody, htmlBody)
	if err != nil {
		return err
	}
	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to send mail to %s", recipient)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(recipient, subject, plainBody, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, errs.Wrapf(err, "invalid sender address %q", n.from)
	}
	if err := msg.To(recipient); err != nil {
		return nil, errs.Wrapf(err, "invalid recipient address %q", recipient)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, plainBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}
