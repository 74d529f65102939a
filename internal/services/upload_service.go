package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/svitanok-centre/site/internal/platform/storage"
)

// ObjectUploader stores an object and returns its public URL. Implemented by
// the storage platform uploader.
type ObjectUploader interface {
	Upload(ctx context.Context, kind storage.ContentKind, fileName, contentType string, body io.Reader) (string, error)
}

// allowedImageTypes lists the content types accepted for cover and gallery images.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// UploadServiceDeps groups constructor parameters for the upload service.
type UploadServiceDeps struct {
	Uploader ObjectUploader
}

type uploadService struct {
	uploader ObjectUploader
}

var _ UploadService = (*uploadService)(nil)

// NewUploadService constructs the upload service with the supplied dependencies.
func NewUploadService(deps UploadServiceDeps) (UploadService, error) {
	if deps.Uploader == nil {
		return nil, errors.New("upload service: uploader is required")
	}
	return &uploadService{uploader: deps.Uploader}, nil
}

// UploadImage validates the file metadata and stores the object.
func (s *uploadService) UploadImage(ctx context.Context, kind storage.ContentKind, fileName, contentType string, body io.Reader) (string, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return "", errors.New("upload service: file name is required")
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", ErrUnsupportedImageType
	}
	if body == nil {
		return "", errors.New("upload service: body is required")
	}
	return s.uploader.Upload(ctx, kind, fileName, contentType, body)
}
