// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/mindpath/mindpath-backend/internal/config"
)

const welcomeSubject = "Welcome to MindPath"

const welcomeBody = `Hi %s,

Your MindPath account is ready. Your boards, calendar and mind tools
will sync across devices from now on.

The MindPath team
`

// Sender sends transactional mail through an SMTP relay.
type Sender struct {
	log    *slog.Logger
	client *gomail.Client
	from   string
}

// NewSender creates an SMTP-backed sender from config.
func NewSender(logger *slog.Logger, cfg config.MailConfig) (*Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSender: %w", err)
	}

	return &Sender{
		log:    logger.With("component", "mail"),
		client: client,
		from:   cfg.From,
	}, nil
}

// SendWelcome delivers the one-time welcome message.
func (s *Sender) SendWelcome(ctx context.Context, email, name string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("mail.SendWelcome from: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("mail.SendWelcome to: %w", err)
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(welcomeBody, name))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail.SendWelcome send: %w", err)
	}

	s.log.DebugContext(ctx, "welcome email delivered", slog.String("to", email))
	return nil
}

// NopSender satisfies the sender contract without talking to a relay. Used
// when mail is disabled in config; every send succeeds silently.
type NopSender struct{}

// SendWelcome does nothing.
func (NopSender) SendWelcome(context.Context, string, string) error { return nil }
