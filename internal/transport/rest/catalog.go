package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kavita-backend/internal/domain"
	"github.com/heartmarshall/kavita-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	Home(ctx context.Context) (*catalog.HomePage, error)
	ListPoems(ctx context.Context, input catalog.ListPoemsInput) ([]domain.PoemWithDetails, error)
	GetPoem(ctx context.Context, slug string) (*catalog.PoemPage, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthorProfile(ctx context.Context, slug string) (*catalog.AuthorProfile, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*catalog.CategoryPage, error)
}

// CatalogHandler serves the browsing endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type homeResponse struct {
	Featured []poemResponse `json:"featured"`
	Recent   []poemResponse `json:"recent"`
}

type poemPageResponse struct {
	Poem    poemResponse   `json:"poem"`
	Related []poemResponse `json:"related"`
}

type authorProfileResponse struct {
	Author authorResponse `json:"author"`
	Poems  []poemResponse `json:"poems"`
}

type categoryPageResponse struct {
	Category categoryResponse `json:"category"`
	Poems    []poemResponse   `json:"poems"`
}

// Home handles GET /api/home.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Home(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang := language(r)
	writeJSON(w, http.StatusOK, homeResponse{
		Featured: toPoemResponses(page.Featured, lang),
		Recent:   toPoemResponses(page.Recent, lang),
	})
}

// ListPoems handles GET /api/poems?q=&category=&author=&featured=&limit=.
func (h *CatalogHandler) ListPoems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := intParam(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	featured, err := boolParam(r, "featured")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	poems, err := h.svc.ListPoems(r.Context(), catalog.ListPoemsInput{
		Search:       query.Get("q"),
		CategorySlug: query.Get("category"),
		AuthorSlug:   query.Get("author"),
		FeaturedOnly: featured,
		Limit:        limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPoemResponses(poems, language(r)))
}

// GetPoem handles GET /api/poems/{slug}.
func (h *CatalogHandler) GetPoem(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetPoem(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang := language(r)
	writeJSON(w, http.StatusOK, poemPageResponse{
		Poem:    toPoemResponse(&page.Poem, lang),
		Related: toPoemResponses(page.Related, lang),
	})
}

// ListAuthors handles GET /api/authors.
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.ListAuthors(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthorResponses(authors))
}

// GetAuthor handles GET /api/authors/{slug}.
func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetAuthorProfile(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authorProfileResponse{
		Author: *toAuthorResponse(&profile.Author),
		Poems:  toPoemResponses(profile.Poems, language(r)),
	})
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(categories, language(r)))
}

// GetCategory handles GET /api/categories/{slug}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetCategory(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	lang := language(r)
	writeJSON(w, http.StatusOK, categoryPageResponse{
		Category: *toCategoryResponse(&page.Category, lang),
		Poems:    toPoemResponses(page.Poems, lang),
	})
}
