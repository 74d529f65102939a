package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/svitanok-centre/site/internal/platform/auth"
	"github.com/svitanok-centre/site/internal/platform/httpx"
	"github.com/svitanok-centre/site/internal/platform/storage"
	"github.com/svitanok-centre/site/internal/services"
)

const maxUploadBytes = 32 << 20

// AdminHandlers serves the content management API. The router guards the
// whole group with the administrator middleware, so handlers only read the
// identity off the context.
type AdminHandlers struct {
	news     services.NewsService
	projects services.ProjectService
	uploads  services.UploadService
}

// AdminHandlersDeps bundles collaborators for the admin handlers.
type AdminHandlersDeps struct {
	News     services.NewsService
	Projects services.ProjectService
	Uploads  services.UploadService
}

// NewAdminHandlers constructs the admin handler set.
func NewAdminHandlers(deps AdminHandlersDeps) (*AdminHandlers, error) {
	if deps.News == nil || deps.Projects == nil {
		return nil, errors.New("admin handlers: news and project services are required")
	}
	return &AdminHandlers{
		news:     deps.News,
		projects: deps.Projects,
		uploads:  deps.Uploads,
	}, nil
}

// Routes registers the admin endpoints.
func (h *AdminHandlers) Routes(r chi.Router) {
	r.Get("/news", h.listNews)
	r.Post("/news", h.createNews)
	r.Put("/news/{newsID}", h.updateNews)
	r.Delete("/news/{newsID}", h.deleteNews)

	r.Get("/projects", h.listProjects)
	r.Post("/projects", h.createProjects)
	r.Put("/projects/{projectID}", h.updateProjects)
	r.Delete("/projects/{projectID}", h.deleteProjects)

	if h.uploads != nil {
		r.Post("/uploads/{kind}", h.upload)
	}
}

func (h *AdminHandlers) listNews(w http.ResponseWriter, r *http.Request) {
	docs, err := h.news.List(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": docs, "total": len(docs)})
}

func (h *AdminHandlers) createNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var doc services.NewsDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed JSON body", http.StatusBadRequest))
		return
	}
	doc.ID = ""
	doc.AuthorEmail = callerEmail(ctx)

	created, err := h.news.Create(ctx, doc)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *AdminHandlers) updateNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var doc services.NewsDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed JSON body", http.StatusBadRequest))
		return
	}
	doc.ID = chi.URLParam(r, "newsID")
	doc.AuthorEmail = callerEmail(ctx)

	updated, err := h.news.Update(ctx, doc)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *AdminHandlers) deleteNews(w http.ResponseWriter, r *http.Request) {
	if err := h.news.Delete(r.Context(), chi.URLParam(r, "newsID")); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) listProjects(w http.ResponseWriter, r *http.Request) {
	docs, err := h.projects.List(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": docs, "total": len(docs)})
}

func (h *AdminHandlers) createProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var doc services.ProjectDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed JSON body", http.StatusBadRequest))
		return
	}
	doc.ID = ""
	doc.AuthorEmail = callerEmail(ctx)

	created, err := h.projects.Create(ctx, doc)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *AdminHandlers) updateProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var doc services.ProjectDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed JSON body", http.StatusBadRequest))
		return
	}
	doc.ID = chi.URLParam(r, "projectID")
	doc.AuthorEmail = callerEmail(ctx)

	updated, err := h.projects.Update(ctx, doc)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *AdminHandlers) deleteProjects(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadKinds maps the URL segment to the storage layout.
var uploadKinds = map[string]storage.ContentKind{
	"news":     storage.KindNewsCover,
	"projects": storage.KindProjectCover,
	"gallery":  storage.KindProjectGallery,
}

func (h *AdminHandlers) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, ok := uploadKinds[chi.URLParam(r, "kind")]
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "unknown upload kind", http.StatusBadRequest))
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed multipart body", http.StatusBadRequest))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "file field is required", http.StatusBadRequest))
		return
	}
	defer file.Close()

	url, err := h.uploads.UploadImage(ctx, kind, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"url": url})
}

func callerEmail(ctx context.Context) string {
	identity, _ := auth.IdentityFromContext(ctx)
	return identity.Email
}
