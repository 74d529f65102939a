package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/svitanok-centre/site/internal/platform/storage"
)

type stubUploader struct {
	kind        storage.ContentKind
	fileName    string
	contentType string
	url         string
}

func (s *stubUploader) Upload(_ context.Context, kind storage.ContentKind, fileName, contentType string, _ io.Reader) (string, error) {
	s.kind = kind
	s.fileName = fileName
	s.contentType = contentType
	return s.url, nil
}

func TestUploadServiceRejectsUnsupportedTypes(t *testing.T) {
	svc, err := NewUploadService(UploadServiceDeps{Uploader: &stubUploader{}})
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	_, err = svc.UploadImage(context.Background(), storage.KindNewsCover, "cv.pdf", "application/pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("expected ErrUnsupportedImageType, got %v", err)
	}
}

func TestUploadServiceForwardsToUploader(t *testing.T) {
	uploader := &stubUploader{url: "https://storage.googleapis.com/bucket/images/news/1-cover.jpg"}
	svc, err := NewUploadService(UploadServiceDeps{Uploader: uploader})
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	url, err := svc.UploadImage(context.Background(), storage.KindNewsCover, " cover.jpg ", "IMAGE/JPEG", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if url != uploader.url {
		t.Fatalf("url = %q", url)
	}
	if uploader.fileName != "cover.jpg" || uploader.contentType != "image/jpeg" {
		t.Fatalf("metadata not normalized: %q %q", uploader.fileName, uploader.contentType)
	}
	if uploader.kind != storage.KindNewsCover {
		t.Fatalf("kind = %q", uploader.kind)
	}
}

func TestUploadServiceRequiresFileName(t *testing.T) {
	svc, err := NewUploadService(UploadServiceDeps{Uploader: &stubUploader{}})
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}
	if _, err := svc.UploadImage(context.Background(), storage.KindNewsCover, "  ", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for blank file name")
	}
}
