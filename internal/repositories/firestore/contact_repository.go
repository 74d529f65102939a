package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/svitanok-centre/site/internal/domain"
	pfirestore "github.com/svitanok-centre/site/internal/platform/firestore"
	"github.com/svitanok-centre/site/internal/repositories"
)

// ContactRepository logs contact-form submissions and queues the outgoing
// notification. The mail collection follows the trigger-email extension
// shape: a "to" list plus a "message" record with subject and bodies.
type ContactRepository struct {
	log  *pfirestore.BaseRepository[domain.ContactMessage]
	mail *pfirestore.BaseRepository[map[string]any]
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository constructs a Firestore-backed contact repository.
func NewContactRepository(provider *pfirestore.Provider, logCollection, mailCollection string) (*ContactRepository, error) {
	if provider == nil {
		return nil, errors.New("contact repository: firestore provider is required")
	}
	if strings.TrimSpace(logCollection) == "" {
		return nil, errors.New("contact repository: log collection is required")
	}
	if strings.TrimSpace(mailCollection) == "" {
		return nil, errors.New("contact repository: mail collection is required")
	}
	return &ContactRepository{
		log:  pfirestore.NewBaseRepository[domain.ContactMessage](provider, logCollection, encodeContact, nil),
		mail: pfirestore.NewBaseRepository[map[string]any](provider, mailCollection, nil, nil),
	}, nil
}

// Log writes the audit copy of the submission.
func (r *ContactRepository) Log(ctx context.Context, msg domain.ContactMessage) (string, error) {
	return r.log.Add(ctx, msg)
}

// QueueMail writes the delivery trigger document addressed to the site inbox.
func (r *ContactRepository) QueueMail(ctx context.Context, to string, msg domain.ContactMessage) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", errors.New("contact repository: recipient is required")
	}
	return r.mail.Add(ctx, map[string]any{
		"to": []string{to},
		"message": map[string]any{
			"subject": msg.Subject,
			"text":    contactMailBody(msg),
		},
		"createdAt": msg.CreatedAt,
	})
}

func encodeContact(_ context.Context, msg domain.ContactMessage) (any, error) {
	return map[string]any{
		"name":      msg.Name,
		"email":     msg.Email,
		"subject":   msg.Subject,
		"body":      msg.Body,
		"createdAt": msg.CreatedAt,
	}, nil
}

func contactMailBody(msg domain.ContactMessage) string {
	return fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body)
}
