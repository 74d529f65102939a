// Package di assembles the runtime object graph from configuration and the
// repository registry.
package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svitanok-centre/site/internal/platform/config"
	"github.com/svitanok-centre/site/internal/repositories"
	"github.com/svitanok-centre/site/internal/services"
)

// Services bundles the service-layer contracts that handlers rely upon.
type Services struct {
	News     services.NewsService
	Projects services.ProjectService
	Contact  services.ContactService
	Uploads  services.UploadService
	System   services.SystemService
}

// Container wires repositories and services for runtime use.
type Container struct {
	Config       config.Config
	Repositories repositories.Registry
	Services     Services
}

// Deps carries the externally constructed collaborators. Tests supply
// in-memory registries and uploaders.
type Deps struct {
	Registry repositories.Registry
	Uploader services.ObjectUploader
	Build    services.BuildInfo
	Clock    func() time.Time
}

// NewContainer constructs the runtime dependencies.
func NewContainer(cfg config.Config, deps Deps) (*Container, error) {
	if deps.Registry == nil {
		return nil, errors.New("di: repositories registry is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	var svc Services

	newsSvc, err := services.NewNewsService(services.NewsServiceDeps{
		Repository: deps.Registry.News(),
		Clock:      clock,
	})
	if err != nil {
		return nil, fmt.Errorf("di: build news service: %w", err)
	}
	svc.News = newsSvc

	projectSvc, err := services.NewProjectService(services.ProjectServiceDeps{
		Repository: deps.Registry.Projects(),
		Clock:      clock,
	})
	if err != nil {
		return nil, fmt.Errorf("di: build project service: %w", err)
	}
	svc.Projects = projectSvc

	contactSvc, err := services.NewContactService(services.ContactServiceDeps{
		Repository: deps.Registry.Contact(),
		InboxEmail: cfg.Content.AdminEmail,
		Clock:      clock,
	})
	if err != nil {
		return nil, fmt.Errorf("di: build contact service: %w", err)
	}
	svc.Contact = contactSvc

	if deps.Uploader != nil {
		uploadSvc, err := services.NewUploadService(services.UploadServiceDeps{Uploader: deps.Uploader})
		if err != nil {
			return nil, fmt.Errorf("di: build upload service: %w", err)
		}
		svc.Uploads = uploadSvc
	}

	systemSvc, err := services.NewSystemService(services.SystemServiceDeps{
		HealthRepository: deps.Registry.Health(),
		Clock:            clock,
		Build:            deps.Build,
	})
	if err != nil {
		return nil, fmt.Errorf("di: build system service: %w", err)
	}
	svc.System = systemSvc

	return &Container{
		Config:       cfg,
		Repositories: deps.Registry,
		Services:     svc,
	}, nil
}

// Close releases repository clients.
func (c *Container) Close(ctx context.Context) error {
	if c == nil || c.Repositories == nil {
		return nil
	}
	return c.Repositories.Close(ctx)
}
