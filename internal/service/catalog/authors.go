package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// ListAuthors returns all authors ordered by name.
func (s *Service) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.content.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// GetAuthorProfile returns the author with the slug and all their poems.
func (s *Service) GetAuthorProfile(ctx context.Context, slug string) (*AuthorProfile, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	author, err := s.content.GetAuthorBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	poems, err := s.listWithDetails(ctx, s.loaders(ctx), domain.PoemFilter{AuthorID: &author.ID})
	if err != nil {
		return nil, fmt.Errorf("author poems: %w", err)
	}

	return &AuthorProfile{Author: *author, Poems: poems}, nil
}
