package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// ListPoems returns poems matching input, newest first. Unknown author or
// category slugs yield domain.ErrNotFound.
func (s *Service) ListPoems(ctx context.Context, input ListPoemsInput) ([]domain.PoemWithDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.PoemFilter{
		Search:       strings.TrimSpace(input.Search),
		FeaturedOnly: input.FeaturedOnly,
		Limit:        input.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = s.cfg.ListLimit
	}

	if slug := strings.TrimSpace(input.AuthorSlug); slug != "" {
		author, err := s.content.GetAuthorBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve author filter: %w", err)
		}
		filter.AuthorID = &author.ID
	}
	if slug := strings.TrimSpace(input.CategorySlug); slug != "" {
		category, err := s.content.GetCategoryBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve category filter: %w", err)
		}
		filter.CategoryID = &category.ID
	}

	poems, err := s.listWithDetails(ctx, s.loaders(ctx), filter)
	if err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}
	return poems, nil
}

// GetPoem returns the poem with the slug, its author and category, and up
// to RelatedLimit poems sharing its author or category.
func (s *Service) GetPoem(ctx context.Context, slug string) (*PoemPage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	poem, err := s.content.GetPoemBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get poem: %w", err)
	}

	loaders := s.loaders(ctx)
	page := &PoemPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		details, err := s.withDetails(gctx, loaders, []domain.Poem{*poem})
		if err != nil {
			return err
		}
		page.Poem = details[0]
		return nil
	})
	g.Go(func() error {
		related, err := s.listWithDetails(gctx, loaders, domain.PoemFilter{
			Related: &domain.Related{PoemID: poem.ID, AuthorID: poem.AuthorID, CategoryID: poem.CategoryID},
			Limit:   s.cfg.RelatedLimit,
		})
		if err != nil {
			return fmt.Errorf("related poems: %w", err)
		}
		page.Related = related
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "poem page loaded",
		slog.String("slug", slug),
		slog.String("category_id", idOrNil(poem.CategoryID)),
		slog.Int("related", len(page.Related)),
	)
	return page, nil
}
