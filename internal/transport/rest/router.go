package rest

import (
	"net/http"

	"github.com/heartmarshall/kavita-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers served by the router.
type Handlers struct {
	Health  *HealthHandler
	Catalog *CatalogHandler
	Reader  *ReaderHandler
}

// NewRouter registers every route. limit wraps the endpoints that do work
// per keystroke or click (lookup and tokenize).
func NewRouter(h Handlers, limit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/home", h.Catalog.Home)
	mux.HandleFunc("GET /api/poems", h.Catalog.ListPoems)
	mux.HandleFunc("GET /api/poems/{slug}", h.Catalog.GetPoem)
	mux.HandleFunc("GET /api/poems/{slug}/render", h.Reader.RenderPoem)
	mux.HandleFunc("GET /api/authors", h.Catalog.ListAuthors)
	mux.HandleFunc("GET /api/authors/{slug}", h.Catalog.GetAuthor)
	mux.HandleFunc("GET /api/categories", h.Catalog.ListCategories)
	mux.HandleFunc("GET /api/categories/{slug}", h.Catalog.GetCategory)

	mux.HandleFunc("GET /api/glossary", h.Reader.Glossary)
	mux.Handle("GET /api/glossary/lookup", limit(http.HandlerFunc(h.Reader.Lookup)))
	mux.Handle("POST /api/tokenize", limit(http.HandlerFunc(h.Reader.Tokenize)))

	return mux
}
