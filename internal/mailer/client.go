// Package mailer sends the contact-form notification emails over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
)

// Config holds the SMTP settings. All required fields are validated at
// construction rather than per send.
type Config struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromName     string
	FromEmail    string
	ManagerEmail string
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "host")
	}
	if c.Port <= 0 {
		missing = append(missing, "port")
	}
	if c.FromEmail == "" {
		missing = append(missing, "from email")
	}
	if c.ManagerEmail == "" {
		missing = append(missing, "manager recipient")
	}
	if len(missing) > 0 {
		return fmt.Errorf("mailer config incomplete: missing %v", missing)
	}
	return nil
}

// Mailer delivers contact notifications through one SMTP account.
type Mailer struct {
	client *mail.Client
	cfg    Config
}

// New validates the configuration and prepares the SMTP client.
func New(cfg Config) (*Mailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

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
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Mailer{client: client, cfg: cfg}, nil
}

// SendContactEmails sends the full submission to the manager and a
// best-effort acknowledgment to the submitter. Only the manager copy
// can fail the call; an acknowledgment failure is logged and dropped.
func (m *Mailer) SendContactEmails(ctx context.Context, msg *models.ContactMessage) error {
	managerErr := m.sendManagerCopy(ctx, msg)

	if err := m.sendAcknowledgment(ctx, msg); err != nil {
		log.Printf("Warning: failed to send acknowledgment to %s: %v", msg.Email, err)
	}

	return managerErr
}

func (m *Mailer) sendManagerCopy(ctx context.Context, msg *models.ContactMessage) error {
	body, err := renderManagerBody(msg)
	if err != nil {
		return fmt.Errorf("failed to render manager email: %w", err)
	}

	mm := mail.NewMsg()
	if err := mm.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := mm.To(m.cfg.ManagerEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("failed to set reply-to: %w", err)
	}
	mm.Subject(fmt.Sprintf("New contact form message: %s", msg.Subject))
	mm.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("failed to send manager notification: %w", err)
	}
	return nil
}

func (m *Mailer) sendAcknowledgment(ctx context.Context, msg *models.ContactMessage) error {
	if msg.Email == "" {
		return errors.New("submission has no email address")
	}

	body, err := renderAcknowledgmentBody(msg, m.cfg.FromName)
	if err != nil {
		return fmt.Errorf("failed to render acknowledgment email: %w", err)
	}

	mm := mail.NewMsg()
	if err := mm.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := mm.To(msg.Email); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	mm.Subject("We received your message")
	mm.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("failed to send acknowledgment: %w", err)
	}
	return nil
}
