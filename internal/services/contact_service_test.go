package services

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/svitanok-centre/site/internal/domain"
)

type stubContactRepo struct {
	logged   []domain.ContactMessage
	queued   []domain.ContactMessage
	queuedTo string
	logErr   error
	mailErr  error
}

func (s *stubContactRepo) Log(_ context.Context, msg domain.ContactMessage) (string, error) {
	if s.logErr != nil {
		return "", s.logErr
	}
	s.logged = append(s.logged, msg)
	return "log-1", nil
}

func (s *stubContactRepo) QueueMail(_ context.Context, to string, msg domain.ContactMessage) (string, error) {
	if s.mailErr != nil {
		return "", s.mailErr
	}
	s.queuedTo = to
	s.queued = append(s.queued, msg)
	return "mail-1", nil
}

func newContactService(t *testing.T, repo *stubContactRepo) ContactService {
	t.Helper()
	svc, err := NewContactService(ContactServiceDeps{
		Repository: repo,
		InboxEmail: "info@svitanok.org.ua",
		Clock:      fixedClock(time.Date(2025, time.May, 10, 8, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("NewContactService: %v", err)
	}
	return svc
}

func TestContactServiceSubmitLogsAndQueues(t *testing.T) {
	repo := &stubContactRepo{}
	svc := newContactService(t, repo)

	err := svc.Submit(context.Background(), domain.ContactMessage{
		Name:  " Олена ",
		Email: "olena@example.org",
		Body:  " Добрий день! ",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(repo.logged) != 1 || len(repo.queued) != 1 {
		t.Fatalf("expected one log and one mail write, got %d/%d", len(repo.logged), len(repo.queued))
	}
	if repo.queuedTo != "info@svitanok.org.ua" {
		t.Fatalf("mail addressed to %q", repo.queuedTo)
	}
	logged := repo.logged[0]
	if logged.Name != "Олена" || logged.Body != "Добрий день!" {
		t.Fatalf("fields not trimmed: %+v", logged)
	}
	if logged.Subject != defaultContactSubject {
		t.Fatalf("default subject not applied: %q", logged.Subject)
	}
	if logged.CreatedAt.IsZero() {
		t.Fatal("createdAt not stamped")
	}
}

func TestContactServiceSubmitValidation(t *testing.T) {
	svc := newContactService(t, &stubContactRepo{})

	cases := []struct {
		name string
		msg  domain.ContactMessage
		want error
	}{
		{"missing name", domain.ContactMessage{Email: "a@b.org", Body: "hi"}, ErrNameRequired},
		{"bad email", domain.ContactMessage{Name: "n", Email: "not-an-email", Body: "hi"}, ErrEmailInvalid},
		{"missing body", domain.ContactMessage{Name: "n", Email: "a@b.org"}, ErrBodyRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Submit(context.Background(), tc.msg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestContactServiceSubmitLogFailureSkipsMail(t *testing.T) {
	repo := &stubContactRepo{logErr: errors.New("unavailable")}
	svc := newContactService(t, repo)

	err := svc.Submit(context.Background(), domain.ContactMessage{
		Name: "n", Email: "a@b.org", Body: "hi",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.queued) != 0 {
		t.Fatal("mail must not be queued when the log write fails")
	}
}
