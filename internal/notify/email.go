package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// EmailSender delivers messages over SMTP.
type EmailSender struct {
	client *mail.Client
	sender string
}

// EmailOption configures an EmailSender.
type EmailOption func(*EmailSender)

// WithMailClient sets a pre-built SMTP client, overriding the one
// constructed from host/port/credentials.
func WithMailClient(c *mail.Client) EmailOption {
	return func(e *EmailSender) {
		e.client = c
	}
}

// NewEmailSender creates an SMTP-backed sender. The sender address is used
// as the From header on every outgoing message.
func NewEmailSender(
	host string,
	port int,
	username, password, sender string,
	opts ...EmailOption,
) (*EmailSender, error) {
	e := &EmailSender{sender: sender}

	for _, opt := range opts {
		opt(e)
	}

	if e.client == nil {
		client, err := mail.NewClient(
			host,
			mail.WithPort(port),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
		if err != nil {
			return nil, fmt.Errorf("creating smtp client: %w", err)
		}
		e.client = client
	}

	return e, nil
}

// Deliver sends the message to the target email address.
func (e *EmailSender) Deliver(ctx context.Context, target string, msg Message) error {
	m, err := e.buildMsg(target, msg)
	if err != nil {
		return err
	}

	if err := e.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending email to %s: %w", target, err)
	}

	return nil
}

func (e *EmailSender) buildMsg(target string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(e.sender); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", e.sender, err)
	}
	if err := m.To(target); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", target, err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}
