package mail

import (
	"context"

	"estimatepro/internal/usecase/interfaces"
)

// transport delivers a rendered message to a single recipient.
type transport interface {
	deliver(ctx context.Context, to string, msg message) error
}

// Mailer renders transactional emails and hands them to a transport.
type Mailer struct {
	transport transport
}

var _ interfaces.IMailer = (*Mailer)(nil)

func (m *Mailer) SendNewLead(ctx context.Context, to string, data interfaces.NewLeadEmail) error {
	msg, err := newLeadMessage(data)
	if err != nil {
		return err
	}
	return m.transport.deliver(ctx, to, msg)
}

func (m *Mailer) SendTrialReminder(ctx context.Context, to string, data interfaces.TrialReminderEmail) error {
	msg, err := trialReminderMessage(data)
	if err != nil {
		return err
	}
	return m.transport.deliver(ctx, to, msg)
}

func (m *Mailer) SendTrialExpired(ctx context.Context, to string, data interfaces.TrialExpiredEmail) error {
	msg, err := trialExpiredMessage(data)
	if err != nil {
		return err
	}
	return m.transport.deliver(ctx, to, msg)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to string, data interfaces.PasswordResetEmail) error {
	msg, err := passwordResetMessage(data)
	if err != nil {
		return err
	}
	return m.transport.deliver(ctx, to, msg)
}
