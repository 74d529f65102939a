package forms

import (
	"bytes"
	"context"
	"strings"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/storage"
	"github.com/svitanok-centre/site/internal/services"
)

// ProjectFields is the editable field set of a project entry.
type ProjectFields struct {
	Title       map[domain.Lang]string
	Description map[domain.Lang]string
	Location    map[domain.Lang]string
	DateYMD     string
	DateStart   string
	DateEnd     string
	GalleryURLs []string
	YouTubeURLs []string
	Featured    bool
	ImageURL    string
}

// SetSingleDate stages a single event date. A non-blank value clears any
// staged range so the two shapes never coexist.
func (pf *ProjectFields) SetSingleDate(ymd string) {
	pf.DateYMD = strings.TrimSpace(ymd)
	if pf.DateYMD != "" {
		pf.DateStart = ""
		pf.DateEnd = ""
	}
}

// SetRangeStart stages the range start, clearing a staged single date.
func (pf *ProjectFields) SetRangeStart(ymd string) {
	pf.DateStart = strings.TrimSpace(ymd)
	if pf.DateStart != "" {
		pf.DateYMD = ""
	}
}

// SetRangeEnd stages the range end, clearing a staged single date.
func (pf *ProjectFields) SetRangeEnd(ymd string) {
	pf.DateEnd = strings.TrimSpace(ymd)
	if pf.DateEnd != "" {
		pf.DateYMD = ""
	}
}

// ProjectForm drives the create/edit screen for projects. Besides the cover
// image it stages a batch of gallery files that upload on submit.
type ProjectForm struct {
	projects services.ProjectService
	uploads  services.UploadService

	mode      Mode
	editingID string
	fields    ProjectFields
	cover     *StagedFile
	gallery   []*StagedFile
}

// NewProjectForm constructs an idle project form.
func NewProjectForm(projects services.ProjectService, uploads services.UploadService) *ProjectForm {
	return &ProjectForm{projects: projects, uploads: uploads}
}

// Mode returns the current lifecycle phase.
func (f *ProjectForm) Mode() Mode { return f.mode }

// EditingID returns the document under edit, empty for a new entry.
func (f *ProjectForm) EditingID() string { return f.editingID }

// Fields exposes the editable field set while an edit session is open.
func (f *ProjectForm) Fields() *ProjectFields {
	if f.mode != ModeEditing {
		return nil
	}
	return &f.fields
}

// BeginCreate opens an edit session for a new entry.
func (f *ProjectForm) BeginCreate() {
	f.discard()
	f.mode = ModeEditing
	f.fields = ProjectFields{
		Title:       emptyLocalized(),
		Description: emptyLocalized(),
		Location:    emptyLocalized(),
	}
}

// BeginEdit opens an edit session seeded from an existing document.
func (f *ProjectForm) BeginEdit(doc domain.ProjectDocument) {
	f.discard()
	f.mode = ModeEditing
	f.editingID = doc.ID
	f.fields = ProjectFields{
		Title:       hydrateLocalized(doc.Title),
		Description: hydrateLocalized(doc.DescriptionHTML),
		Location:    hydrateLocalized(doc.Location),
		DateYMD:     doc.DateYMD,
		DateStart:   doc.DateStartYMD,
		DateEnd:     doc.DateEndYMD,
		GalleryURLs: append([]string(nil), doc.GalleryURLs...),
		YouTubeURLs: append([]string(nil), doc.YouTubeURLs...),
		Featured:    doc.Featured,
		ImageURL:    doc.ImageURL,
	}
}

// StageCover replaces the pending cover image, releasing any prior one.
func (f *ProjectForm) StageCover(file *StagedFile) error {
	if f.mode != ModeEditing {
		file.Release()
		return ErrNotEditing
	}
	f.cover.Release()
	f.cover = file
	return nil
}

// StageGalleryFile appends a pending gallery image.
func (f *ProjectForm) StageGalleryFile(file *StagedFile) error {
	if f.mode != ModeEditing {
		file.Release()
		return ErrNotEditing
	}
	f.gallery = append(f.gallery, file)
	return nil
}

// Validate checks the field set in display order. The single date and the
// range are mutually exclusive.
func (f *ProjectForm) Validate() error {
	if f.mode != ModeEditing {
		return ErrNotEditing
	}
	if !anyNonBlank(f.fields.Title) {
		return services.ErrTitleRequired
	}
	hasSingle := strings.TrimSpace(f.fields.DateYMD) != ""
	hasRange := strings.TrimSpace(f.fields.DateStart) != "" || strings.TrimSpace(f.fields.DateEnd) != ""
	if hasSingle && hasRange {
		return services.ErrDateConflict
	}
	if !hasSingle && !hasRange {
		return services.ErrDateRequired
	}
	return nil
}

// Submit validates, uploads the staged files, and writes the document. The
// gallery keeps previously stored URLs and appends the new uploads.
func (f *ProjectForm) Submit(ctx context.Context, authorEmail string) (domain.ProjectDocument, error) {
	switch f.mode {
	case ModeSubmitting:
		return domain.ProjectDocument{}, ErrSubmitInFlight
	case ModeEditing:
	default:
		return domain.ProjectDocument{}, ErrNotEditing
	}
	if err := f.Validate(); err != nil {
		return domain.ProjectDocument{}, err
	}

	f.mode = ModeSubmitting
	doc, err := f.submit(ctx, authorEmail)
	if err != nil {
		f.mode = ModeEditing
		return domain.ProjectDocument{}, err
	}
	f.reset()
	return doc, nil
}

func (f *ProjectForm) submit(ctx context.Context, authorEmail string) (domain.ProjectDocument, error) {
	imageURL := f.fields.ImageURL
	if f.cover != nil && !f.cover.Released() {
		url, err := f.uploads.UploadImage(ctx, storage.KindProjectCover, f.cover.Name, f.cover.ContentType, bytes.NewReader(f.cover.Data))
		if err != nil {
			return domain.ProjectDocument{}, err
		}
		imageURL = url
	}

	gallery := append([]string(nil), f.fields.GalleryURLs...)
	for _, file := range f.gallery {
		if file.Released() {
			continue
		}
		url, err := f.uploads.UploadImage(ctx, storage.KindProjectGallery, file.Name, file.ContentType, bytes.NewReader(file.Data))
		if err != nil {
			return domain.ProjectDocument{}, err
		}
		gallery = append(gallery, url)
	}

	doc := domain.ProjectDocument{
		ID:              f.editingID,
		Title:           domain.ByLang(f.fields.Title),
		DescriptionHTML: domain.ByLang(f.fields.Description),
		Location:        domain.ByLang(f.fields.Location),
		ImageURL:        imageURL,
		GalleryURLs:     gallery,
		DateYMD:         f.fields.DateYMD,
		DateStartYMD:    f.fields.DateStart,
		DateEndYMD:      f.fields.DateEnd,
		YouTubeURLs:     append([]string(nil), f.fields.YouTubeURLs...),
		Featured:        f.fields.Featured,
		AuthorEmail:     authorEmail,
	}
	if f.editingID == "" {
		return f.projects.Create(ctx, doc)
	}
	return f.projects.Update(ctx, doc)
}

// Cancel abandons the edit session and releases every staged file.
func (f *ProjectForm) Cancel() {
	f.discard()
}

// DeleteCurrent removes the document under edit and resets the form.
func (f *ProjectForm) DeleteCurrent(ctx context.Context) error {
	if f.mode != ModeEditing || f.editingID == "" {
		return ErrNotEditing
	}
	if err := f.projects.Delete(ctx, f.editingID); err != nil {
		return err
	}
	f.reset()
	return nil
}

func (f *ProjectForm) discard() {
	f.cover.Release()
	f.cover = nil
	for _, file := range f.gallery {
		file.Release()
	}
	f.gallery = nil
	f.mode = ModeIdle
	f.editingID = ""
	f.fields = ProjectFields{}
}

func (f *ProjectForm) reset() {
	f.discard()
}
