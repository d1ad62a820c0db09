// Package mailer implements SMTP dispatch for the report service.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"attendsync/internal/attendance/ports"
	"attendsync/internal/platform/config"
	"attendsync/pkg/email"
)

// SMTP sends messages through one outgoing SMTP account.
type SMTP struct {
	client *mail.Client
}

func NewSMTP(cfg config.SMTPConfig) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTP{client: client}, nil
}

func (s *SMTP) Send(ctx context.Context, msg ports.Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(email.DisplayName(msg.Sender), msg.Sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(msg.Recipients...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	if msg.Reference != "" {
		m.SetGenHeader(mail.Header("X-Reference"), msg.Reference)
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Noop stands in when no SMTP host is configured; every send is logged and
// dropped so the report path stays runnable in development.
type Noop struct {
	Logger *slog.Logger
}

func (n Noop) Send(_ context.Context, msg ports.Message) error {
	n.Logger.Info("mail dispatch disabled, dropping message",
		"subject", msg.Subject, "recipients", len(msg.Recipients))
	return nil
}
