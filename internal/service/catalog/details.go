package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	dl "github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/kavita-backend/internal/dataloader"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// loaders returns the request's DataLoaders, or a fresh set scoped to this
// call when no middleware installed them.
func (s *Service) loaders(ctx context.Context) *dataloader.Loaders {
	if l, ok := dataloader.Lookup(ctx); ok {
		return l
	}
	return dataloader.NewLoaders(s.Loaders())
}

// withDetails attaches authors and categories to poems. All lookups are
// issued before any is awaited so they share one batch.
func (s *Service) withDetails(ctx context.Context, loaders *dataloader.Loaders, poems []domain.Poem) ([]domain.PoemWithDetails, error) {
	authorThunks := make([]dl.Thunk[*domain.Author], len(poems))
	categoryThunks := make([]dl.Thunk[*domain.Category], len(poems))
	for i := range poems {
		authorThunks[i] = loaders.AuthorByID.Load(ctx, poems[i].AuthorID)
		if poems[i].CategoryID != nil {
			categoryThunks[i] = loaders.CategoryByID.Load(ctx, *poems[i].CategoryID)
		}
	}

	out := make([]domain.PoemWithDetails, len(poems))
	for i := range poems {
		author, err := authorThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load author %s: %w", poems[i].AuthorID, err)
		}
		if author == nil {
			s.log.WarnContext(ctx, "poem references missing author",
				slog.String("poem", poems[i].Slug),
				slog.String("author_id", poems[i].AuthorID.String()),
			)
		}

		var category *domain.Category
		if categoryThunks[i] != nil {
			category, err = categoryThunks[i]()
			if err != nil {
				return nil, fmt.Errorf("load category %s: %w", *poems[i].CategoryID, err)
			}
		}

		out[i] = domain.PoemWithDetails{Poem: poems[i], Author: author, Category: category}
	}
	return out, nil
}

// listWithDetails runs a poem query and attaches details.
func (s *Service) listWithDetails(ctx context.Context, loaders *dataloader.Loaders, filter domain.PoemFilter) ([]domain.PoemWithDetails, error) {
	poems, err := s.content.ListPoems(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.withDetails(ctx, loaders, poems)
}

func idOrNil(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
