package digest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPOptions configures the mail transport.
type SMTPOptions struct {
	Host     string
	Port     int
	Sender   string
	Password string
	Timeout  time.Duration
}

// Sender delivers rendered digests to a subscriber.
type Sender struct {
	opts SMTPOptions
}

// NewSender validates the transport options.
func NewSender(opts SMTPOptions) (*Sender, error) {
	if opts.Host == "" {
		return nil, errors.New("smtp host required")
	}
	if opts.Sender == "" {
		return nil, errors.New("smtp sender required")
	}
	if opts.Port <= 0 {
		opts.Port = 465
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Sender{opts: opts}, nil
}

// Send renders the digest and delivers it to recipient over implicit TLS.
func (s *Sender) Send(ctx context.Context, recipient string, d Digest) error {
	body, err := Render(d)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.opts.Sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(d.Subject())
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(s.opts.Host,
		mail.WithPort(s.opts.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.opts.Sender),
		mail.WithPassword(s.opts.Password),
		mail.WithTimeout(s.opts.Timeout),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
