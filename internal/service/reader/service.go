// Package reader renders poems as clickable token streams and answers word
// lookups against the glossary.
package reader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/kavita-backend/internal/domain"
	"github.com/heartmarshall/kavita-backend/internal/gloss"
)

type poemSource interface {
	GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error)
	GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error)
}

const (
	DefaultCacheSize = 256
	MaxTextLength    = 20000
	MaxWordLength    = 100
)

// Service renders poems and resolves clicked words.
type Service struct {
	log      *slog.Logger
	poems    poemSource
	glossary *gloss.Glossary
	cache    *lru.Cache[string, []domain.LineGroup]
}

// NewService creates a reader service. A nil glossary means the built-in one;
// cacheSize <= 0 means DefaultCacheSize.
func NewService(log *slog.Logger, poems poemSource, glossary *gloss.Glossary, cacheSize int) (*Service, error) {
	if glossary == nil {
		glossary = gloss.Builtin()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []domain.LineGroup](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("render cache: %w", err)
	}
	return &Service{
		log:      log.With("service", "reader"),
		poems:    poems,
		glossary: glossary,
		cache:    cache,
	}, nil
}

// Glossary returns the glossary entries in priority order.
func (s *Service) Glossary() []domain.GlossaryEntry {
	return s.glossary.Entries()
}
