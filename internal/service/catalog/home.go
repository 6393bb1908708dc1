package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// Home returns the featured and the most recent poems. Both lists are
// loaded concurrently.
func (s *Service) Home(ctx context.Context) (*HomePage, error) {
	loaders := s.loaders(ctx)
	page := &HomePage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		featured, err := s.listWithDetails(gctx, loaders, domain.PoemFilter{FeaturedOnly: true, Limit: s.cfg.FeaturedLimit})
		if err != nil {
			return fmt.Errorf("featured poems: %w", err)
		}
		page.Featured = featured
		return nil
	})
	g.Go(func() error {
		recent, err := s.listWithDetails(gctx, loaders, domain.PoemFilter{Limit: s.cfg.RecentLimit})
		if err != nil {
			return fmt.Errorf("recent poems: %w", err)
		}
		page.Recent = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}
