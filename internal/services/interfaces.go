// Package services contains the application use-cases sitting between the
// HTTP handlers and the repositories. Services normalise and validate input,
// stamp timestamps, and never touch the transport layer.
package services

import (
	"context"
	"io"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/storage"
)

// Type aliases expose domain models to the services package without reversing dependency direction.
type (
	Lang            = domain.Lang
	NewsDocument    = domain.NewsDocument
	ProjectDocument = domain.ProjectDocument
	ContactMessage  = domain.ContactMessage
	HealthReport    = domain.HealthReport
)

// NewsService manages the news collection lifecycle.
type NewsService interface {
	List(ctx context.Context) ([]NewsDocument, error)
	Get(ctx context.Context, id string) (NewsDocument, error)
	Create(ctx context.Context, doc NewsDocument) (NewsDocument, error)
	Update(ctx context.Context, doc NewsDocument) (NewsDocument, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService manages the project collection lifecycle.
type ProjectService interface {
	List(ctx context.Context) ([]ProjectDocument, error)
	Get(ctx context.Context, id string) (ProjectDocument, error)
	Create(ctx context.Context, doc ProjectDocument) (ProjectDocument, error)
	Update(ctx context.Context, doc ProjectDocument) (ProjectDocument, error)
	Delete(ctx context.Context, id string) error
}

// ContactService accepts public contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg ContactMessage) error
}

// UploadService stores content images and returns their public URLs.
type UploadService interface {
	UploadImage(ctx context.Context, kind storage.ContentKind, fileName, contentType string, body io.Reader) (string, error)
}

// SystemService provides health reports and runtime metadata.
type SystemService interface {
	HealthReport(ctx context.Context) (HealthReport, error)
}
