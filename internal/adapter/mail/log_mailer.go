package mail

import (
	"context"

	"go.uber.org/zap"
)

type logTransport struct{}

// NewLogMailer returns a Mailer that only logs. Used when SMTP is not configured.
func NewLogMailer() *Mailer {
	zap.S().Warnf("[infra][mail] SMTP_HOST not set, emails will only be logged")
	return &Mailer{transport: logTransport{}}
}

func (logTransport) deliver(_ context.Context, to string, msg message) error {
	if to == "" {
		return ErrMissingRecipient
	}
	zap.L().Info("[infra][mail] email suppressed",
		zap.String("to", to),
		zap.String("subject", msg.Subject),
		zap.Int("html_len", len(msg.HTML)),
	)
	return nil
}
