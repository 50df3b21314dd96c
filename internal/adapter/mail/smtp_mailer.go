package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var ErrMissingRecipient = errors.New("email recipient is required")

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpTransport struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds a Mailer that delivers through an SMTP relay.
// STARTTLS is used when the server offers it.
func NewSMTPMailer(s SMTPSettings) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.Username),
			gomail.WithPassword(s.Password),
		)
	}

	client, err := gomail.NewClient(s.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	zap.S().Infof("[infra][mail] smtp mailer ready host=%s port=%d", s.Host, s.Port)
	return &Mailer{transport: &smtpTransport{client: client, from: s.From}}, nil
}

func (t *smtpTransport) deliver(ctx context.Context, to string, msg message) error {
	m, err := buildMsg(t.from, to, msg)
	if err != nil {
		return err
	}
	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		zap.S().Errorf("[infra][mail] send failed to=%s subject=%q err=%v", to, msg.Subject, err)
		return fmt.Errorf("send email: %w", err)
	}
	zap.S().Infof("[infra][mail] sent to=%s subject=%q", to, msg.Subject)
	return nil
}

func buildMsg(from, to string, msg message) (*gomail.Msg, error) {
	if to == "" {
		return nil, ErrMissingRecipient
	}
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	return m, nil
}
