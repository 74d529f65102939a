package firestore

import (
	"context"
	"errors"

	"google.golang.org/api/iterator"

	"github.com/svitanok-centre/site/internal/platform/config"
	pfirestore "github.com/svitanok-centre/site/internal/platform/firestore"
	"github.com/svitanok-centre/site/internal/repositories"
)

// Registry bundles the Firestore-backed repositories behind the repositories.Registry contract.
type Registry struct {
	provider *pfirestore.Provider
	news     *NewsRepository
	projects *ProjectRepository
	contact  *ContactRepository
	health   repositories.HealthRepository
}

var _ repositories.Registry = (*Registry)(nil)

// NewRegistry wires the repositories for the configured collections. Extra
// probes (for example a storage bucket check) are appended to the built-in
// Firestore connectivity probe.
func NewRegistry(provider *pfirestore.Provider, cfg config.FirestoreConfig, extraProbes ...repositories.DependencyProbe) (*Registry, error) {
	if provider == nil {
		return nil, errors.New("registry: firestore provider is required")
	}

	news, err := NewNewsRepository(provider, cfg.NewsCollection)
	if err != nil {
		return nil, err
	}
	projects, err := NewProjectRepository(provider, cfg.ProjectsColl)
	if err != nil {
		return nil, err
	}
	contact, err := NewContactRepository(provider, cfg.ContactLogColl, cfg.MailCollection)
	if err != nil {
		return nil, err
	}

	probes := append([]repositories.DependencyProbe{
		{Name: "firestore", Probe: firestorePing(provider, cfg.NewsCollection)},
	}, extraProbes...)
	health, err := repositories.NewDependencyHealthRepository(probes)
	if err != nil {
		return nil, err
	}

	return &Registry{
		provider: provider,
		news:     news,
		projects: projects,
		contact:  contact,
		health:   health,
	}, nil
}

// Close releases the underlying Firestore client.
func (r *Registry) Close(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Close()
}

// News returns the news repository.
func (r *Registry) News() repositories.NewsRepository { return r.news }

// Projects returns the project repository.
func (r *Registry) Projects() repositories.ProjectRepository { return r.projects }

// Contact returns the contact repository.
func (r *Registry) Contact() repositories.ContactRepository { return r.contact }

// Health returns the dependency health repository.
func (r *Registry) Health() repositories.HealthRepository { return r.health }

func firestorePing(provider *pfirestore.Provider, collection string) func(context.Context) error {
	return func(ctx context.Context) error {
		client, err := provider.Client(ctx)
		if err != nil {
			return err
		}
		iter := client.Collection(collection).Limit(1).Documents(ctx)
		defer iter.Stop()
		if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
			return err
		}
		return nil
	}
}
