// Package catalog serves the poetry browsing pages: the home page, poem
// listings, single poems with related poems, author profiles and category
// pages. It works against any content provider (static fixture, PostgreSQL
// or SQLite).
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/dataloader"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// contentProvider is implemented by static.Provider, the PostgreSQL content
// repository and the SQLite repository.
type contentProvider interface {
	ListPoems(ctx context.Context, filter domain.PoemFilter) ([]domain.Poem, error)
	GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthorBySlug(ctx context.Context, slug string) (*domain.Author, error)
	GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

// Config holds page sizes. Zero values fall back to the defaults.
type Config struct {
	FeaturedLimit int
	RecentLimit   int
	RelatedLimit  int
	ListLimit     int
}

const (
	DefaultFeaturedLimit = 3
	DefaultRecentLimit   = 6
	DefaultRelatedLimit  = 3
	DefaultListLimit     = 50
	MaxListLimit         = 100
	MaxSearchLength      = 200
)

func (c Config) withDefaults() Config {
	if c.FeaturedLimit <= 0 {
		c.FeaturedLimit = DefaultFeaturedLimit
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = DefaultRecentLimit
	}
	if c.RelatedLimit <= 0 {
		c.RelatedLimit = DefaultRelatedLimit
	}
	if c.ListLimit <= 0 || c.ListLimit > MaxListLimit {
		c.ListLimit = DefaultListLimit
	}
	return c
}

// Service implements the catalog read operations.
type Service struct {
	log     *slog.Logger
	content contentProvider
	cfg     Config
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, content contentProvider, cfg Config) *Service {
	return &Service{
		log:     log.With("service", "catalog"),
		content: content,
		cfg:     cfg.withDefaults(),
	}
}

// Loaders returns the DataLoader repositories backed by the service's
// provider, for the per-request middleware.
func (s *Service) Loaders() *dataloader.Repos {
	return &dataloader.Repos{Authors: s.content, Categories: s.content}
}
