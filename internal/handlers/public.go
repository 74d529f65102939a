package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/svitanok-centre/site/internal/content"
	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/httpx"
	"github.com/svitanok-centre/site/internal/platform/requestctx"
	"github.com/svitanok-centre/site/internal/services"
)

const relatedLimit = 3

// PublicHandlers serves the read-only content API and the contact form.
type PublicHandlers struct {
	news     services.NewsService
	projects services.ProjectService
	contact  services.ContactService
	pageSize int
	rng      *rand.Rand
}

// PublicHandlersDeps bundles collaborators for the public handlers.
type PublicHandlersDeps struct {
	News     services.NewsService
	Projects services.ProjectService
	Contact  services.ContactService
	// PageSize is the load-more step for list endpoints.
	PageSize int
	// Rand drives the related-projects shuffle; deterministic in tests.
	Rand *rand.Rand
}

// NewPublicHandlers constructs the public handler set.
func NewPublicHandlers(deps PublicHandlersDeps) (*PublicHandlers, error) {
	if deps.News == nil || deps.Projects == nil {
		return nil, errors.New("public handlers: news and project services are required")
	}
	if deps.PageSize <= 0 {
		deps.PageSize = 6
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return &PublicHandlers{
		news:     deps.News,
		projects: deps.Projects,
		contact:  deps.Contact,
		pageSize: deps.PageSize,
		rng:      deps.Rand,
	}, nil
}

// Routes registers the public endpoints.
func (h *PublicHandlers) Routes(r chi.Router) {
	r.Get("/news", h.listNews)
	r.Get("/news/{newsID}", h.getNews)
	r.Get("/projects", h.listProjects)
	r.Get("/projects/{projectID}", h.getProject)
	if h.contact != nil {
		r.Post("/contact", h.submitContact)
	}
}

func (h *PublicHandlers) listNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestctx.Lang(ctx)

	docs, err := h.news.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	cards := content.MapNewsCards(docs, lang)
	visible := h.visibleParam(r, len(cards))
	page := content.Paginate(cards, visible)

	payload := map[string]any{
		"items":   page,
		"total":   len(cards),
		"visible": len(page),
		"lang":    lang,
	}
	if featured, ok := content.FeaturedNews(cards); ok {
		payload["featured"] = featured
	}
	httpx.WriteJSON(w, http.StatusOK, payload)
}

func (h *PublicHandlers) getNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestctx.Lang(ctx)
	id := chi.URLParam(r, "newsID")

	doc, err := h.news.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	all, err := h.news.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	related := content.MapNewsCards(content.RelatedNews(all, doc.ID, relatedLimit), lang)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"item":    content.MapNewsCards([]domain.NewsDocument{doc}, lang)[0],
		"related": related,
		"lang":    lang,
	})
}

func (h *PublicHandlers) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestctx.Lang(ctx)

	docs, err := h.projects.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	cards := content.MapProjectCards(docs, lang)
	visible := h.visibleParam(r, len(cards))
	page := content.Paginate(cards, visible)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"items":   page,
		"total":   len(cards),
		"visible": len(page),
		"lang":    lang,
	})
}

func (h *PublicHandlers) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestctx.Lang(ctx)
	id := chi.URLParam(r, "projectID")

	doc, err := h.projects.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	all, err := h.projects.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	related := content.MapProjectCards(content.RelatedProjects(all, doc.ID, relatedLimit, h.rng), lang)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"item":    content.MapProjectCards([]domain.ProjectDocument{doc}, lang)[0],
		"related": related,
		"lang":    lang,
	})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *PublicHandlers) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "malformed JSON body", http.StatusBadRequest))
		return
	}

	err := h.contact.Submit(ctx, domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, map[string]any{"status": "accepted"})
}

// visibleParam reads the load-more window size, defaulting to one page.
func (h *PublicHandlers) visibleParam(r *http.Request, total int) int {
	raw := strings.TrimSpace(r.URL.Query().Get("visible"))
	if raw == "" {
		return h.pageSize
	}
	visible, err := strconv.Atoi(raw)
	if err != nil || visible <= 0 {
		return h.pageSize
	}
	if visible > total {
		return total
	}
	return visible
}
