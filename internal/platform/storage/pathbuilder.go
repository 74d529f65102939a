// Package storage uploads public site images to the Cloud Storage bucket
// and composes the object keys they live under.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// ContentKind namespaces uploaded objects by the content type they belong to.
type ContentKind string

const (
	KindNewsCover      ContentKind = "news"
	KindProjectCover   ContentKind = "projects"
	KindProjectGallery ContentKind = "projects/gallery"
)

// ObjectPath composes the storage key for an uploaded image: the configured
// prefix, the content-kind namespace, and a timestamp-prefixed filename so
// repeated uploads of the same file never collide.
func ObjectPath(prefix string, kind ContentKind, fileName string, now time.Time) (string, error) {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return "", fmt.Errorf("storage: path prefix is required")
	}
	cleanName, err := sanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindNewsCover, KindProjectCover, KindProjectGallery:
	default:
		return "", fmt.Errorf("storage: unsupported content kind %q", kind)
	}
	return fmt.Sprintf("%s/%s/%d-%s", prefix, kind, now.UTC().UnixMilli(), cleanName), nil
}

func sanitizeFileName(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("storage: file name is required")
	}
	if strings.ContainsAny(value, "/\\") {
		return "", fmt.Errorf("storage: file name contains invalid path characters")
	}
	if strings.Contains(value, "..") {
		return "", fmt.Errorf("storage: file name contains invalid traversal sequence")
	}
	return strings.ReplaceAll(value, " ", "_"), nil
}
