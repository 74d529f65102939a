package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/svitanok-centre/site/internal/platform/auth"
	"github.com/svitanok-centre/site/internal/platform/storage"
)

type stubUploadService struct {
	url string
	err error
}

func (s *stubUploadService) UploadImage(_ context.Context, _ storage.ContentKind, _, _ string, _ io.Reader) (string, error) {
	return s.url, s.err
}

func adminRouter(t *testing.T, news *stubNewsService, projects *stubProjectService, uploads *stubUploadService) chi.Router {
	t.Helper()
	handlers, err := NewAdminHandlers(AdminHandlersDeps{
		News:     news,
		Projects: projects,
		Uploads:  uploads,
	})
	if err != nil {
		t.Fatalf("NewAdminHandlers: %v", err)
	}

	// Stands in for the token middleware: every request carries the admin identity.
	identity := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithIdentity(r.Context(), auth.Identity{UID: "u1", Email: "admin@svitanok.org.ua"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
	return NewRouter(WithAdminRoutes(handlers.Routes, identity))
}

func TestAdminCreateNewsStampsAuthor(t *testing.T) {
	news := &stubNewsService{}
	router := adminRouter(t, news, &stubProjectService{}, nil)

	body := `{"title":{"ua":"Назва"},"date":"2025-06-14","category":"events"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/news", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID          string `json:"id"`
		AuthorEmail string `json:"authorEmail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "news-new" {
		t.Fatalf("id = %q", created.ID)
	}
	if created.AuthorEmail != "admin@svitanok.org.ua" {
		t.Fatalf("authorEmail = %q", created.AuthorEmail)
	}
}

func TestAdminUpdateNewsUsesPathID(t *testing.T) {
	news := &stubNewsService{}
	router := adminRouter(t, news, &stubProjectService{}, nil)

	body := `{"title":"Назва","date":"2025-06-14","category":"events","id":"spoofed"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/news/news-7", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.ID != "news-7" {
		t.Fatalf("id = %q, path must win over the body", updated.ID)
	}
}

func TestAdminDeleteNews(t *testing.T) {
	router := adminRouter(t, &stubNewsService{}, &stubProjectService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/news/news-1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminMalformedBodyIs400(t *testing.T) {
	router := adminRouter(t, &stubNewsService{}, &stubProjectService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/news", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminUploadRejectsUnknownKind(t *testing.T) {
	router := adminRouter(t, &stubNewsService{}, &stubProjectService{}, &stubUploadService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/videos", strings.NewReader("")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
