package forms

import (
	"bytes"
	"context"
	"strings"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/storage"
	"github.com/svitanok-centre/site/internal/services"
)

// NewsFields is the editable field set of a news entry. Localized fields are
// hydrated into the full per-language shape so switching the input language
// never drops content.
type NewsFields struct {
	Title       map[domain.Lang]string
	Excerpt     map[domain.Lang]string
	DateYMD     string
	CategoryKey string
	Featured    bool
	ImageURL    string
}

// NewsForm drives the create/edit screen for news entries. It is not safe
// for concurrent use; the admin UI funnels all mutations through one loop.
type NewsForm struct {
	news    services.NewsService
	uploads services.UploadService

	mode      Mode
	editingID string
	fields    NewsFields
	cover     *StagedFile
}

// NewNewsForm constructs an idle news form.
func NewNewsForm(news services.NewsService, uploads services.UploadService) *NewsForm {
	return &NewsForm{news: news, uploads: uploads}
}

// Mode returns the current lifecycle phase.
func (f *NewsForm) Mode() Mode { return f.mode }

// EditingID returns the document under edit, empty for a new entry.
func (f *NewsForm) EditingID() string { return f.editingID }

// Fields exposes the editable field set while an edit session is open.
func (f *NewsForm) Fields() *NewsFields {
	if f.mode != ModeEditing {
		return nil
	}
	return &f.fields
}

// BeginCreate opens an edit session for a new entry. Any previous session is
// discarded and its staged file released.
func (f *NewsForm) BeginCreate() {
	f.discard()
	f.mode = ModeEditing
	f.fields = NewsFields{
		Title:   emptyLocalized(),
		Excerpt: emptyLocalized(),
	}
}

// BeginEdit opens an edit session seeded from an existing document.
func (f *NewsForm) BeginEdit(doc domain.NewsDocument) {
	f.discard()
	f.mode = ModeEditing
	f.editingID = doc.ID
	f.fields = NewsFields{
		Title:       hydrateLocalized(doc.Title),
		Excerpt:     hydrateLocalized(doc.ExcerptHTML),
		DateYMD:     doc.DateYMD,
		CategoryKey: doc.CategoryKey,
		Featured:    doc.Featured,
		ImageURL:    doc.ImageURL,
	}
}

// StageCover replaces the pending cover image, releasing any prior one.
func (f *NewsForm) StageCover(file *StagedFile) error {
	if f.mode != ModeEditing {
		file.Release()
		return ErrNotEditing
	}
	f.cover.Release()
	f.cover = file
	return nil
}

// Validate checks the field set in display order so the first failing field
// receives focus.
func (f *NewsForm) Validate() error {
	if f.mode != ModeEditing {
		return ErrNotEditing
	}
	if !anyNonBlank(f.fields.Title) {
		return services.ErrTitleRequired
	}
	if strings.TrimSpace(f.fields.DateYMD) == "" {
		return services.ErrDateRequired
	}
	if strings.TrimSpace(f.fields.CategoryKey) == "" {
		return services.ErrCategoryRequired
	}
	return nil
}

// Submit validates, uploads the staged cover, and writes the document. On
// success the form resets to idle; on failure it stays editable with the
// staged file intact so the author can retry.
func (f *NewsForm) Submit(ctx context.Context, authorEmail string) (domain.NewsDocument, error) {
	switch f.mode {
	case ModeSubmitting:
		return domain.NewsDocument{}, ErrSubmitInFlight
	case ModeEditing:
	default:
		return domain.NewsDocument{}, ErrNotEditing
	}
	if err := f.Validate(); err != nil {
		return domain.NewsDocument{}, err
	}

	f.mode = ModeSubmitting
	doc, err := f.submit(ctx, authorEmail)
	if err != nil {
		f.mode = ModeEditing
		return domain.NewsDocument{}, err
	}
	f.reset()
	return doc, nil
}

func (f *NewsForm) submit(ctx context.Context, authorEmail string) (domain.NewsDocument, error) {
	imageURL := f.fields.ImageURL
	if f.cover != nil && !f.cover.Released() {
		url, err := f.uploads.UploadImage(ctx, storage.KindNewsCover, f.cover.Name, f.cover.ContentType, bytes.NewReader(f.cover.Data))
		if err != nil {
			return domain.NewsDocument{}, err
		}
		imageURL = url
	}

	doc := domain.NewsDocument{
		ID:          f.editingID,
		Title:       domain.ByLang(f.fields.Title),
		ExcerptHTML: domain.ByLang(f.fields.Excerpt),
		ImageURL:    imageURL,
		DateYMD:     f.fields.DateYMD,
		CategoryKey: f.fields.CategoryKey,
		Featured:    f.fields.Featured,
		AuthorEmail: authorEmail,
	}
	if f.editingID == "" {
		return f.news.Create(ctx, doc)
	}
	return f.news.Update(ctx, doc)
}

// Cancel abandons the edit session and releases the staged file.
func (f *NewsForm) Cancel() {
	f.discard()
}

// DeleteCurrent removes the document under edit and resets the form.
func (f *NewsForm) DeleteCurrent(ctx context.Context) error {
	if f.mode != ModeEditing || f.editingID == "" {
		return ErrNotEditing
	}
	if err := f.news.Delete(ctx, f.editingID); err != nil {
		return err
	}
	f.reset()
	return nil
}

func (f *NewsForm) discard() {
	f.cover.Release()
	f.cover = nil
	f.mode = ModeIdle
	f.editingID = ""
	f.fields = NewsFields{}
}

func (f *NewsForm) reset() {
	f.discard()
}

func emptyLocalized() map[domain.Lang]string {
	values := make(map[domain.Lang]string, len(domain.DefaultFallbackOrder))
	for _, lang := range domain.DefaultFallbackOrder {
		values[lang] = ""
	}
	return values
}

func hydrateLocalized(text domain.LocalizedText) map[domain.Lang]string {
	hydrated := text.Hydrated()
	values := emptyLocalized()
	for _, lang := range domain.DefaultFallbackOrder {
		if value, ok := hydrated.Get(lang); ok {
			values[lang] = value
		}
	}
	return values
}

func anyNonBlank(values map[domain.Lang]string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
