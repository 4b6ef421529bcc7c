package bootstrap

import (
	"ad-approval-service/internal/infra/mailer"
	"ad-approval-service/internal/pkg/config"
	"ad-approval-service/internal/usecase/commands"

	"github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewSMTPClient,
			fx.As(new(mailer.Sender)),
		),
		fx.Annotate(
			NewSMTPNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewSMTPClient(cfg config.Config) (*mail.Client, error) {
	return mailer.NewSMTPClient(cfg.SMTP)
}

func NewSMTPNotifier(sender mailer.Sender, cfg config.Config) *mailer.SMTPNotifier {
	return mailer.NewSMTPNotifier(sender, cfg.SMTP)
}
