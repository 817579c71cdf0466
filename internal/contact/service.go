package contact

import (
	"context"
	"fmt"
	"log"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
)

const maxUserAgentLength = 500

// Notifier dispatches the two submission emails. The returned error
// covers the manager copy only; the submitter acknowledgment is best
// effort inside the implementation.
type Notifier interface {
	SendContactEmails(ctx context.Context, msg *models.ContactMessage) error
}

// ClientMeta carries the server-observed request metadata stamped onto
// a stored submission.
type ClientMeta struct {
	IP        string
	UserAgent string
}

// Result is the outcome of a successful submission. Warning is set when
// the record was stored but the manager notification failed.
type Result struct {
	Message *models.ContactMessage
	Warning string
}

// Service validates, persists and relays contact submissions.
type Service struct {
	repo     *contacts.Repository
	notifier Notifier
}

// NewService creates the submission service. notifier may be nil when
// outbound mail is not configured.
func NewService(repo *contacts.Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Submit runs the full pipeline: validate, stamp server fields,
// persist, notify. A notification failure never rolls back the stored
// record.
func (s *Service) Submit(ctx context.Context, form *Form, meta ClientMeta) (*Result, FieldErrors, error) {
	sub, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	msg := &models.ContactMessage{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		Message:   sub.Message,
		IP:        meta.IP,
		UserAgent: truncateRunes(meta.UserAgent, maxUserAgentLength),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	result := &Result{Message: msg}
	if s.notifier != nil {
		if err := s.notifier.SendContactEmails(ctx, msg); err != nil {
			log.Printf("Warning: failed to notify manager about contact message %d: %v", msg.ID, err)
			result.Warning = "Your message was received, but the notification email could not be sent."
		}
	}
	return result, nil, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
