// Package repositories defines the persistence contracts consumed by the
// service layer. Implementations live in subpackages named after their
// backing store.
package repositories

import (
	"context"

	domain "github.com/svitanok-centre/site/internal/domain"
)

// Registry exposes typed repository accessors and lifecycle hooks for dependency injection.
type Registry interface {
	Close(ctx context.Context) error

	News() NewsRepository
	Projects() ProjectRepository
	Contact() ContactRepository
	Health() HealthRepository
}

// RepositoryError wraps low-level persistence failures with categorisation used by services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// NewsRepository persists news and event documents.
type NewsRepository interface {
	List(ctx context.Context) ([]domain.NewsDocument, error)
	FindByID(ctx context.Context, id string) (domain.NewsDocument, error)
	Create(ctx context.Context, doc domain.NewsDocument) (string, error)
	Update(ctx context.Context, doc domain.NewsDocument) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository persists project documents.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.ProjectDocument, error)
	FindByID(ctx context.Context, id string) (domain.ProjectDocument, error)
	Create(ctx context.Context, doc domain.ProjectDocument) (string, error)
	Update(ctx context.Context, doc domain.ProjectDocument) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository records contact-form submissions. Log keeps the audit
// copy; QueueMail writes the parallel document picked up by the mail
// delivery extension.
type ContactRepository interface {
	Log(ctx context.Context, msg domain.ContactMessage) (string, error)
	QueueMail(ctx context.Context, to string, msg domain.ContactMessage) (string, error)
}

// HealthRepository exposes status of downstream dependencies for health checks.
type HealthRepository interface {
	Collect(ctx context.Context) (domain.HealthReport, error)
}
