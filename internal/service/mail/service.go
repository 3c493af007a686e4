package mail

import (
	"context"
	"fmt"
	"html"

	gomail "github.com/wneessen/go-mail"

	"github.com/rhenlumbo/portfolio-backend/internal/config"
)

// Message is one contact-form submission to relay.
type Message struct {
	Ref   string
	Name  string
	Email string
	Body  string
}

// Sender delivers a contact submission to the owner's mailbox. The SMTP
// implementation satisfies it in production; tests substitute stubs.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender relays submissions through the configured SMTP server. The
// owner's mailbox is both the authenticated sender and the recipient; the
// visitor's address goes into Reply-To so the owner can answer directly.
type SMTPSender struct {
	cfg config.MailConfig
}

// NewSMTPSender creates a sender for the given relay settings.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send builds and delivers the email. One dial per submission; the contact
// form is low-volume enough that pooling connections is not worth it.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat("Portfolio Contact Form", s.cfg.Username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(s.cfg.Username); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}

	m.Subject(fmt.Sprintf("New message from %s", msg.Name))
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	m.AddAlternativeString(gomail.TypeTextHTML, fmt.Sprintf(
		"<p>%s</p><p><strong>From:</strong> %s (%s)</p><p>Ref: %s</p>",
		html.EscapeString(msg.Body),
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		msg.Ref,
	))

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Port == 465 {
		// Implicit TLS, the Gmail submission port the site was built for.
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to deliver mail: %w", err)
	}
	return nil
}
