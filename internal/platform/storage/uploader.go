package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/svitanok-centre/site/internal/platform/config"
)

// Uploader writes image blobs to the public bucket and returns the
// resolvable URL that gets embedded into documents.
type Uploader struct {
	bucket string
	prefix string
	client *storage.Client
	now    func() time.Time
}

// UploaderOption customises Uploader behaviour.
type UploaderOption func(*Uploader)

// WithClock injects a custom clock, used by tests to pin object names.
func WithClock(clock func() time.Time) UploaderOption {
	return func(u *Uploader) {
		if clock != nil {
			u.now = clock
		}
	}
}

// NewUploader constructs an Uploader bound to the configured bucket.
func NewUploader(cfg config.StorageConfig, client *storage.Client, opts ...UploaderOption) (*Uploader, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	if client == nil {
		return nil, errors.New("storage: client is required")
	}
	uploader := &Uploader{
		bucket: strings.TrimSpace(cfg.Bucket),
		prefix: cfg.ImagePathPrefix,
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(uploader)
		}
	}
	return uploader, nil
}

// Upload streams the blob into the bucket under a content-kind namespaced,
// timestamp-prefixed key and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, kind ContentKind, fileName, contentType string, body io.Reader) (string, error) {
	if ctx == nil {
		return "", errors.New("storage: context is required")
	}
	if body == nil {
		return "", errors.New("storage: upload body is required")
	}

	object, err := ObjectPath(u.prefix, kind, fileName, u.now())
	if err != nil {
		return "", err
	}

	writer := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	if contentType != "" {
		writer.ContentType = contentType
	}
	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("storage: upload %s: %w", object, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storage: finalise %s: %w", object, err)
	}
	return PublicURL(u.bucket, object), nil
}

// PublicURL resolves the canonical public address of an object. The bucket
// uses uniform public read access, so no signing is involved.
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}
