package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/svitanok-centre/site/internal/dates"
	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/repositories"
	"github.com/svitanok-centre/site/internal/richtext"
)

// NewsServiceDeps groups constructor parameters for the news service.
type NewsServiceDeps struct {
	Repository repositories.NewsRepository
	Clock      func() time.Time
}

type newsService struct {
	repo  repositories.NewsRepository
	clock func() time.Time
}

var _ NewsService = (*newsService)(nil)

// NewNewsService constructs the news service with the supplied dependencies.
func NewNewsService(deps NewsServiceDeps) (NewsService, error) {
	if deps.Repository == nil {
		return nil, errors.New("news service: repository is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &newsService{
		repo:  deps.Repository,
		clock: func() time.Time { return clock().UTC() },
	}, nil
}

func (s *newsService) List(ctx context.Context) ([]NewsDocument, error) {
	return s.repo.List(ctx)
}

func (s *newsService) Get(ctx context.Context, id string) (NewsDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewsDocument{}, errors.New("news service: id is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *newsService) Create(ctx context.Context, doc NewsDocument) (NewsDocument, error) {
	doc = normalizeNews(doc)
	if err := validateNews(doc); err != nil {
		return NewsDocument{}, err
	}

	now := s.clock()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		return NewsDocument{}, err
	}
	doc.ID = id
	return doc, nil
}

func (s *newsService) Update(ctx context.Context, doc NewsDocument) (NewsDocument, error) {
	if strings.TrimSpace(doc.ID) == "" {
		return NewsDocument{}, errors.New("news service: id is required")
	}
	doc = normalizeNews(doc)
	if err := validateNews(doc); err != nil {
		return NewsDocument{}, err
	}

	existing, err := s.repo.FindByID(ctx, doc.ID)
	if err != nil {
		return NewsDocument{}, err
	}
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = s.clock()

	if err := s.repo.Update(ctx, doc); err != nil {
		return NewsDocument{}, err
	}
	return doc, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("news service: id is required")
	}
	return s.repo.Delete(ctx, id)
}

func normalizeNews(doc NewsDocument) NewsDocument {
	doc.Title = doc.Title.Transform(strings.TrimSpace)
	doc.ExcerptHTML = sanitizeRichText(doc.ExcerptHTML)
	doc.DateYMD = dates.ToCanonicalYMD(doc.DateYMD)
	doc.CategoryKey = strings.TrimSpace(doc.CategoryKey)
	doc.ImageURL = strings.TrimSpace(doc.ImageURL)
	doc.AuthorEmail = strings.TrimSpace(doc.AuthorEmail)
	return doc
}

func validateNews(doc NewsDocument) error {
	if !localizedHasText(doc.Title) {
		return ErrTitleRequired
	}
	if doc.DateYMD == "" {
		return ErrDateRequired
	}
	if doc.CategoryKey == "" {
		return ErrCategoryRequired
	}
	return nil
}

// sanitizeRichText runs the authored HTML through the sanitizer and anchor
// normaliser for every stored language.
func sanitizeRichText(text domain.LocalizedText) domain.LocalizedText {
	return text.Transform(func(html string) string {
		if strings.TrimSpace(html) == "" {
			return ""
		}
		return richtext.EnhanceLinks(richtext.Sanitize(html))
	})
}

// localizedHasText reports whether any language carries non-blank content.
func localizedHasText(text domain.LocalizedText) bool {
	for _, lang := range domain.DefaultFallbackOrder {
		if value, ok := text.Get(lang); ok && strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
