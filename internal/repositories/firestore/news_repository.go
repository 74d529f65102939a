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

// NewsRepository persists news documents in a single Firestore collection.
type NewsRepository struct {
	base *pfirestore.BaseRepository[domain.NewsDocument]
}

var _ repositories.NewsRepository = (*NewsRepository)(nil)

// NewNewsRepository constructs a Firestore-backed news repository.
func NewNewsRepository(provider *pfirestore.Provider, collection string) (*NewsRepository, error) {
	if provider == nil {
		return nil, errors.New("news repository: firestore provider is required")
	}
	if strings.TrimSpace(collection) == "" {
		return nil, errors.New("news repository: collection is required")
	}
	return &NewsRepository{
		base: pfirestore.NewBaseRepository(provider, collection, encodeNews, decodeNews),
	}, nil
}

// List returns every news document. The server-side order-by is a fast path;
// when it fails (for example because the index is missing) the unordered
// query is used and callers sort client-side.
func (r *NewsRepository) List(ctx context.Context) ([]domain.NewsDocument, error) {
	docs, err := r.base.QueryWithFallback(ctx,
		func(query firestore.Query) firestore.Query {
			return query.OrderBy("date", firestore.Desc)
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	items := make([]domain.NewsDocument, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Data)
	}
	return items, nil
}

// FindByID fetches a single news document.
func (r *NewsRepository) FindByID(ctx context.Context, id string) (domain.NewsDocument, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.NewsDocument{}, err
	}
	return doc.Data, nil
}

// Create adds a new document and returns its store-assigned ID.
func (r *NewsRepository) Create(ctx context.Context, doc domain.NewsDocument) (string, error) {
	return r.base.Add(ctx, doc)
}

// Update overwrites the document identified by doc.ID.
func (r *NewsRepository) Update(ctx context.Context, doc domain.NewsDocument) error {
	if strings.TrimSpace(doc.ID) == "" {
		return errors.New("news repository: document id is required")
	}
	return r.base.Set(ctx, doc.ID, doc)
}

// Delete removes the document.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
