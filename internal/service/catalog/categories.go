package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.content.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns the category with the slug and its poems.
func (s *Service) GetCategory(ctx context.Context, slug string) (*CategoryPage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	category, err := s.content.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	poems, err := s.listWithDetails(ctx, s.loaders(ctx), domain.PoemFilter{CategoryID: &category.ID})
	if err != nil {
		return nil, fmt.Errorf("category poems: %w", err)
	}

	return &CategoryPage{Category: *category, Poems: poems}, nil
}
