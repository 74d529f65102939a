package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/svitanok-centre/site/internal/repositories"
)

const defaultContactSubject = "Повідомлення з сайту"

// ContactServiceDeps groups constructor parameters for the contact service.
type ContactServiceDeps struct {
	Repository repositories.ContactRepository
	// InboxEmail is the address notified about new submissions.
	InboxEmail string
	Clock      func() time.Time
}

type contactService struct {
	repo  repositories.ContactRepository
	inbox string
	clock func() time.Time
}

var _ ContactService = (*contactService)(nil)

// NewContactService constructs the contact service with the supplied dependencies.
func NewContactService(deps ContactServiceDeps) (ContactService, error) {
	if deps.Repository == nil {
		return nil, errors.New("contact service: repository is required")
	}
	inbox := strings.TrimSpace(deps.InboxEmail)
	if inbox == "" {
		return nil, errors.New("contact service: inbox email is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &contactService{
		repo:  deps.Repository,
		inbox: inbox,
		clock: func() time.Time { return clock().UTC() },
	}, nil
}

// Submit logs the submission and queues the notification mail. The audit
// copy is written first so a delivery failure never loses the message.
func (s *contactService) Submit(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Body = strings.TrimSpace(msg.Body)

	if msg.Name == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return ErrEmailInvalid
	}
	if msg.Body == "" {
		return ErrBodyRequired
	}
	if msg.Subject == "" {
		msg.Subject = defaultContactSubject
	}
	msg.CreatedAt = s.clock()

	if _, err := s.repo.Log(ctx, msg); err != nil {
		return fmt.Errorf("contact service: log submission: %w", err)
	}
	if _, err := s.repo.QueueMail(ctx, s.inbox, msg); err != nil {
		return fmt.Errorf("contact service: queue notification: %w", err)
	}
	return nil
}
