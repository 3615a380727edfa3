// Package mailer delivers notification emails.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dtroode/contactbook-server/internal/config"
	"github.com/dtroode/contactbook-server/internal/model"
)

var _ model.Mailer = (*SMTP)(nil)

// SMTP sends messages through an authenticated STARTTLS relay.
type SMTP struct {
	client *mail.Client
	from   string
}

func NewSMTP(cfg config.Email) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTP{
		client: client,
		from:   cfg.Sender(),
	}, nil
}

// Send dials the relay, delivers msg and closes the connection.
func (s *SMTP) Send(ctx context.Context, msg model.Message) error {
	m, err := buildMessage(s.from, msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func buildMessage(from string, msg model.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	return m, nil
}
