package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/svitanok-centre/site/internal/dates"
	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/textutil"
	"github.com/svitanok-centre/site/internal/repositories"
	"github.com/svitanok-centre/site/internal/richtext"
)

// ProjectServiceDeps groups constructor parameters for the project service.
type ProjectServiceDeps struct {
	Repository repositories.ProjectRepository
	Clock      func() time.Time
}

type projectService struct {
	repo  repositories.ProjectRepository
	clock func() time.Time
}

var _ ProjectService = (*projectService)(nil)

// NewProjectService constructs the project service with the supplied dependencies.
func NewProjectService(deps ProjectServiceDeps) (ProjectService, error) {
	if deps.Repository == nil {
		return nil, errors.New("project service: repository is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &projectService{
		repo:  deps.Repository,
		clock: func() time.Time { return clock().UTC() },
	}, nil
}

func (s *projectService) List(ctx context.Context) ([]ProjectDocument, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (ProjectDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProjectDocument{}, errors.New("project service: id is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, doc ProjectDocument) (ProjectDocument, error) {
	doc = normalizeProject(doc)
	if err := validateProject(doc); err != nil {
		return ProjectDocument{}, err
	}

	now := s.clock()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		return ProjectDocument{}, err
	}
	doc.ID = id
	return doc, nil
}

func (s *projectService) Update(ctx context.Context, doc ProjectDocument) (ProjectDocument, error) {
	if strings.TrimSpace(doc.ID) == "" {
		return ProjectDocument{}, errors.New("project service: id is required")
	}
	doc = normalizeProject(doc)
	if err := validateProject(doc); err != nil {
		return ProjectDocument{}, err
	}

	existing, err := s.repo.FindByID(ctx, doc.ID)
	if err != nil {
		return ProjectDocument{}, err
	}
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = s.clock()

	if err := s.repo.Update(ctx, doc); err != nil {
		return ProjectDocument{}, err
	}
	return doc, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("project service: id is required")
	}
	return s.repo.Delete(ctx, id)
}

func normalizeProject(doc ProjectDocument) ProjectDocument {
	doc.Title = doc.Title.Transform(strings.TrimSpace)
	doc.Location = doc.Location.Transform(strings.TrimSpace)
	doc.ImageURL = strings.TrimSpace(doc.ImageURL)
	doc.AuthorEmail = strings.TrimSpace(doc.AuthorEmail)
	doc.DateYMD = dates.ToCanonicalYMD(doc.DateYMD)
	doc.DateStartYMD = dates.ToCanonicalYMD(doc.DateStartYMD)
	doc.DateEndYMD = dates.ToCanonicalYMD(doc.DateEndYMD)
	doc.GalleryURLs = textutil.NormalizeURLList(doc.GalleryURLs)
	doc.YouTubeURLs = textutil.NormalizeURLList(doc.YouTubeURLs)

	// Links are extracted from the sanitized markup before anchors are
	// rewritten, so stored hrefs keep the author's raw form.
	clean := doc.DescriptionHTML.Transform(func(html string) string {
		if strings.TrimSpace(html) == "" {
			return ""
		}
		return richtext.Sanitize(html)
	})
	doc.DescriptionLinks = extractLinksByLang(clean)
	doc.DescriptionHTML = clean.Transform(func(html string) string {
		if html == "" {
			return ""
		}
		return richtext.EnhanceLinks(html)
	})
	return doc
}

func validateProject(doc ProjectDocument) error {
	if !localizedHasText(doc.Title) {
		return ErrTitleRequired
	}
	hasSingle := doc.DateYMD != ""
	hasRange := doc.DateStartYMD != "" || doc.DateEndYMD != ""
	if hasSingle && hasRange {
		return ErrDateConflict
	}
	if !hasSingle && !hasRange {
		return ErrDateRequired
	}
	return nil
}

func extractLinksByLang(clean domain.LocalizedText) map[domain.Lang][]domain.Link {
	links := make(map[domain.Lang][]domain.Link, 2)
	for _, lang := range domain.DefaultFallbackOrder {
		html, ok := clean.Get(lang)
		if !ok || html == "" {
			continue
		}
		if extracted := richtext.ExtractLinks(html); len(extracted) > 0 {
			links[lang] = extracted
		}
	}
	if len(links) == 0 {
		return nil
	}
	return links
}
