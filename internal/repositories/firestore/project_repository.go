package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	domain "github.com/svitanok-centre/site/internal/domain"
	pfirestore "github.com/svitanok-centre/site/internal/platform/firestore"
	"github.com/svitanok-centre/site/internal/repositories"
)

// ProjectRepository persists project documents in a single Firestore collection.
type ProjectRepository struct {
	base *pfirestore.BaseRepository[domain.ProjectDocument]
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository constructs a Firestore-backed project repository.
func NewProjectRepository(provider *pfirestore.Provider, collection string) (*ProjectRepository, error) {
	if provider == nil {
		return nil, errors.New("project repository: firestore provider is required")
	}
	if strings.TrimSpace(collection) == "" {
		return nil, errors.New("project repository: collection is required")
	}
	return &ProjectRepository{
		base: pfirestore.NewBaseRepository(provider, collection, encodeProject, decodeProject),
	}, nil
}

// List returns every project document. Projects mix single dates with ranges,
// so the server-side order-by on the single-date field is only a fast path
// and callers always re-sort client-side.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.ProjectDocument, error) {
	docs, err := r.base.QueryWithFallback(ctx,
		func(query firestore.Query) firestore.Query {
			return query.OrderBy("date", firestore.Desc)
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	items := make([]domain.ProjectDocument, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Data)
	}
	return items, nil
}

// FindByID fetches a single project document.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (domain.ProjectDocument, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.ProjectDocument{}, err
	}
	return doc.Data, nil
}

// Create adds a new document and returns its store-assigned ID.
func (r *ProjectRepository) Create(ctx context.Context, doc domain.ProjectDocument) (string, error) {
	return r.base.Add(ctx, doc)
}

// Update overwrites the document identified by doc.ID.
func (r *ProjectRepository) Update(ctx context.Context, doc domain.ProjectDocument) error {
	if strings.TrimSpace(doc.ID) == "" {
		return errors.New("project repository: document id is required")
	}
	return r.base.Set(ctx, doc.ID, doc)
}

// Delete removes the document.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
