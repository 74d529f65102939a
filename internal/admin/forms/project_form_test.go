package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/services"
)

type fakeProjectService struct {
	created *domain.ProjectDocument
	updated *domain.ProjectDocument
	deleted string
}

func (s *fakeProjectService) List(context.Context) ([]domain.ProjectDocument, error) {
	return nil, nil
}
func (s *fakeProjectService) Get(context.Context, string) (domain.ProjectDocument, error) {
	return domain.ProjectDocument{}, nil
}
func (s *fakeProjectService) Create(_ context.Context, doc domain.ProjectDocument) (domain.ProjectDocument, error) {
	doc.ID = "project-1"
	s.created = &doc
	return doc, nil
}
func (s *fakeProjectService) Update(_ context.Context, doc domain.ProjectDocument) (domain.ProjectDocument, error) {
	s.updated = &doc
	return doc, nil
}
func (s *fakeProjectService) Delete(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

var _ services.ProjectService = (*fakeProjectService)(nil)

func TestProjectFormValidateDateExclusivity(t *testing.T) {
	form := NewProjectForm(&fakeProjectService{}, &fakeUploadService{})
	form.BeginCreate()
	form.Fields().Title[domain.LangUA] = "Проєкт"

	assert.ErrorIs(t, form.Validate(), services.ErrDateRequired)

	form.Fields().DateYMD = "2025-03-01"
	form.Fields().DateStart = "2025-03-02"
	assert.ErrorIs(t, form.Validate(), services.ErrDateConflict)

	form.Fields().DateYMD = ""
	form.Fields().DateEnd = "2025-03-05"
	assert.NoError(t, form.Validate())
}

func TestProjectFormDateSettersClearOpposingShape(t *testing.T) {
	form := NewProjectForm(&fakeProjectService{}, &fakeUploadService{})
	form.BeginCreate()
	fields := form.Fields()
	fields.Title[domain.LangUA] = "Проєкт"

	fields.SetRangeStart("2025-03-02")
	fields.SetRangeEnd("2025-03-05")
	fields.SetSingleDate("2025-03-01")
	assert.Equal(t, "2025-03-01", fields.DateYMD)
	assert.Empty(t, fields.DateStart)
	assert.Empty(t, fields.DateEnd)

	fields.SetRangeStart("2025-04-10")
	assert.Empty(t, fields.DateYMD, "range start must clear the single date")
	assert.Equal(t, "2025-04-10", fields.DateStart)

	fields.SetSingleDate("2025-05-01")
	fields.SetRangeEnd("2025-05-09")
	assert.Empty(t, fields.DateYMD, "range end must clear the single date")
	assert.Equal(t, "2025-05-09", fields.DateEnd)

	// Blanking one shape must not wipe the other.
	fields.SetSingleDate("")
	assert.Equal(t, "2025-05-09", fields.DateEnd)
	assert.NoError(t, form.Validate())
}

func TestProjectFormSubmitUploadsGalleryBatch(t *testing.T) {
	projects := &fakeProjectService{}
	uploads := &fakeUploadService{}
	form := NewProjectForm(projects, uploads)

	form.BeginCreate()
	form.Fields().Title[domain.LangUA] = "Проєкт"
	form.Fields().DateYMD = "2025-03-01"
	form.Fields().GalleryURLs = []string{"https://existing/1.jpg"}

	var releases int
	release := func() { releases++ }
	require.NoError(t, form.StageGalleryFile(NewStagedFile("g1.jpg", "image/jpeg", nil, release)))
	require.NoError(t, form.StageGalleryFile(NewStagedFile("g2.jpg", "image/jpeg", nil, release)))

	doc, err := form.Submit(context.Background(), "admin@svitanok.org.ua")
	require.NoError(t, err)

	require.NotNil(t, projects.created)
	assert.Len(t, doc.GalleryURLs, 3, "existing URLs kept, new uploads appended")
	assert.Equal(t, "https://existing/1.jpg", doc.GalleryURLs[0])
	assert.Equal(t, []string{"g1.jpg", "g2.jpg"}, uploads.uploads)
	assert.Equal(t, 2, releases, "gallery handles released after successful submit")
	assert.Equal(t, ModeIdle, form.Mode())
}

func TestProjectFormBeginEditCopiesSlices(t *testing.T) {
	form := NewProjectForm(&fakeProjectService{}, &fakeUploadService{})
	original := domain.ProjectDocument{
		ID:          "project-1",
		Title:       domain.PlainText("t"),
		GalleryURLs: []string{"https://a/1.jpg"},
	}
	form.BeginEdit(original)

	form.Fields().GalleryURLs = append(form.Fields().GalleryURLs, "https://a/2.jpg")
	assert.Len(t, original.GalleryURLs, 1, "edits must not alias the source document")
}

func TestProjectFormCancelReleasesAllStagedFiles(t *testing.T) {
	form := NewProjectForm(&fakeProjectService{}, &fakeUploadService{})
	form.BeginCreate()

	var releases int
	release := func() { releases++ }
	require.NoError(t, form.StageCover(NewStagedFile("c.jpg", "image/jpeg", nil, release)))
	require.NoError(t, form.StageGalleryFile(NewStagedFile("g.jpg", "image/jpeg", nil, release)))

	form.Cancel()
	assert.Equal(t, 2, releases)
}

func TestProjectFormDeleteCurrent(t *testing.T) {
	projects := &fakeProjectService{}
	form := NewProjectForm(projects, &fakeUploadService{})
	form.BeginEdit(domain.ProjectDocument{ID: "project-3", Title: domain.PlainText("t")})

	require.NoError(t, form.DeleteCurrent(context.Background()))
	assert.Equal(t, "project-3", projects.deleted)
	assert.Equal(t, ModeIdle, form.Mode())
}
