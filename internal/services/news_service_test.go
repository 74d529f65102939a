package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/svitanok-centre/site/internal/domain"
)

type stubNewsRepo struct {
	docs    map[string]domain.NewsDocument
	created domain.NewsDocument
	updated domain.NewsDocument
	deleted string
	listErr error
}

func (s *stubNewsRepo) List(context.Context) ([]domain.NewsDocument, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	docs := make([]domain.NewsDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *stubNewsRepo) FindByID(_ context.Context, id string) (domain.NewsDocument, error) {
	doc, ok := s.docs[id]
	if !ok {
		return domain.NewsDocument{}, errors.New("not found")
	}
	return doc, nil
}

func (s *stubNewsRepo) Create(_ context.Context, doc domain.NewsDocument) (string, error) {
	s.created = doc
	return "news-1", nil
}

func (s *stubNewsRepo) Update(_ context.Context, doc domain.NewsDocument) error {
	s.updated = doc
	return nil
}

func (s *stubNewsRepo) Delete(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewsServiceCreateNormalizesAndStamps(t *testing.T) {
	repo := &stubNewsRepo{}
	now := time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)
	svc, err := NewNewsService(NewsServiceDeps{Repository: repo, Clock: fixedClock(now)})
	if err != nil {
		t.Fatalf("NewNewsService: %v", err)
	}

	doc, err := svc.Create(context.Background(), domain.NewsDocument{
		Title: domain.ByLang(map[domain.Lang]string{domain.LangUA: "  Новина  "}),
		ExcerptHTML: domain.ByLang(map[domain.Lang]string{
			domain.LangUA: `<p>text</p><script>alert(1)</script>`,
		}),
		DateYMD:     "2025/06/14",
		CategoryKey: " events ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if doc.ID != "news-1" {
		t.Fatalf("expected store-assigned id, got %q", doc.ID)
	}
	if got := repo.created.DateYMD; got != "2025-06-14" {
		t.Fatalf("date not canonicalized: %q", got)
	}
	if got := repo.created.CategoryKey; got != "events" {
		t.Fatalf("category not trimmed: %q", got)
	}
	if title, _ := repo.created.Title.Get(domain.LangUA); title != "Новина" {
		t.Fatalf("title not trimmed: %q", title)
	}
	if excerpt, _ := repo.created.ExcerptHTML.Get(domain.LangUA); strings.Contains(excerpt, "script") {
		t.Fatalf("excerpt not sanitized: %q", excerpt)
	}
	if !repo.created.CreatedAt.Equal(now) || !repo.created.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not stamped: %+v", repo.created)
	}
}

func TestNewsServiceCreateValidation(t *testing.T) {
	svc, err := NewNewsService(NewsServiceDeps{Repository: &stubNewsRepo{}})
	if err != nil {
		t.Fatalf("NewNewsService: %v", err)
	}

	cases := []struct {
		name string
		doc  domain.NewsDocument
		want error
	}{
		{
			name: "missing title",
			doc:  domain.NewsDocument{DateYMD: "2025-01-01", CategoryKey: "events"},
			want: ErrTitleRequired,
		},
		{
			name: "blank title",
			doc: domain.NewsDocument{
				Title:       domain.ByLang(map[domain.Lang]string{domain.LangUA: "   "}),
				DateYMD:     "2025-01-01",
				CategoryKey: "events",
			},
			want: ErrTitleRequired,
		},
		{
			name: "missing date",
			doc: domain.NewsDocument{
				Title:       domain.PlainText("t"),
				CategoryKey: "events",
			},
			want: ErrDateRequired,
		},
		{
			name: "missing category",
			doc: domain.NewsDocument{
				Title:   domain.PlainText("t"),
				DateYMD: "2025-01-01",
			},
			want: ErrCategoryRequired,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.doc); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewsServiceUpdatePreservesCreatedAt(t *testing.T) {
	created := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)
	repo := &stubNewsRepo{docs: map[string]domain.NewsDocument{
		"news-1": {ID: "news-1", CreatedAt: created},
	}}
	svc, err := NewNewsService(NewsServiceDeps{Repository: repo, Clock: fixedClock(now)})
	if err != nil {
		t.Fatalf("NewNewsService: %v", err)
	}

	doc, err := svc.Update(context.Background(), domain.NewsDocument{
		ID:          "news-1",
		Title:       domain.PlainText("updated"),
		DateYMD:     "2025-06-14",
		CategoryKey: "events",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !doc.CreatedAt.Equal(created) {
		t.Fatalf("createdAt not preserved: %v", doc.CreatedAt)
	}
	if !repo.updated.UpdatedAt.Equal(now) {
		t.Fatalf("updatedAt not stamped: %v", repo.updated.UpdatedAt)
	}
}

func TestNewsServiceDeleteRequiresID(t *testing.T) {
	repo := &stubNewsRepo{}
	svc, err := NewNewsService(NewsServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewNewsService: %v", err)
	}
	if err := svc.Delete(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank id")
	}
	if err := svc.Delete(context.Background(), "news-1"); err != nil || repo.deleted != "news-1" {
		t.Fatalf("delete not forwarded: err=%v deleted=%q", err, repo.deleted)
	}
}
