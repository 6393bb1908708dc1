package static

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// Provider answers content queries from a Fixture. It is read-only after
// construction and safe for concurrent use.
type Provider struct {
	authors    []domain.Author
	categories []domain.Category
	poems      []domain.Poem // published_at DESC

	authorByID   map[uuid.UUID]*domain.Author
	categoryByID map[uuid.UUID]*domain.Category
}

// New indexes the fixture. The fixture must not be modified afterwards.
func New(fx *Fixture) *Provider {
	p := &Provider{
		authors:      fx.Authors,
		categories:   fx.Categories,
		poems:        slices.Clone(fx.Poems),
		authorByID:   make(map[uuid.UUID]*domain.Author, len(fx.Authors)),
		categoryByID: make(map[uuid.UUID]*domain.Category, len(fx.Categories)),
	}
	for i := range p.authors {
		p.authorByID[p.authors[i].ID] = &p.authors[i]
	}
	for i := range p.categories {
		p.categoryByID[p.categories[i].ID] = &p.categories[i]
	}
	slices.SortStableFunc(p.poems, func(a, b domain.Poem) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return p
}

// Ping has no backend to check; it only reports context cancellation.
func (p *Provider) Ping(ctx context.Context) error { return ctx.Err() }

// ---------------------------------------------------------------------------
// Poems
// ---------------------------------------------------------------------------

// ListPoems returns poems matching filter, newest first.
func (p *Provider) ListPoems(ctx context.Context, filter domain.PoemFilter) ([]domain.Poem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Poem, 0)
	for i := range p.poems {
		poem := &p.poems[i]
		if !p.matches(poem, filter, search) {
			continue
		}
		out = append(out, *poem)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (p *Provider) matches(poem *domain.Poem, f domain.PoemFilter, search string) bool {
	if f.AuthorID != nil && poem.AuthorID != *f.AuthorID {
		return false
	}
	if f.CategoryID != nil && !sameID(poem.CategoryID, f.CategoryID) {
		return false
	}
	if f.FeaturedOnly && !poem.IsFeatured {
		return false
	}
	if r := f.Related; r != nil {
		if poem.ID == r.PoemID {
			return false
		}
		if poem.AuthorID != r.AuthorID && !(r.CategoryID != nil && sameID(poem.CategoryID, r.CategoryID)) {
			return false
		}
	}
	if search != "" {
		author := ""
		if a, ok := p.authorByID[poem.AuthorID]; ok {
			author = a.Name
		}
		if !containsFold(search, poem.Title, poem.TitleRoman, poem.Content, poem.ContentRoman, author) {
			return false
		}
	}
	return true
}

func sameID(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// GetPoemBySlug returns domain.ErrNotFound for an unknown slug.
func (p *Provider) GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range p.poems {
		if p.poems[i].Slug == slug {
			poem := p.poems[i]
			return &poem, nil
		}
	}
	return nil, fmt.Errorf("poem %q: %w", slug, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Authors
// ---------------------------------------------------------------------------

// ListAuthors returns all authors ordered by name.
func (p *Provider) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(p.authors)
	slices.SortFunc(out, func(a, b domain.Author) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

// GetAuthorBySlug returns domain.ErrNotFound for an unknown slug.
func (p *Provider) GetAuthorBySlug(ctx context.Context, slug string) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range p.authors {
		if p.authors[i].Slug == slug {
			a := p.authors[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("author %q: %w", slug, domain.ErrNotFound)
}

// GetAuthorsByIDs returns the authors that exist among ids, in no
// particular order.
func (p *Provider) GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := p.authorByID[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns all categories ordered by name.
func (p *Provider) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(p.categories)
	slices.SortFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

// GetCategoryBySlug returns domain.ErrNotFound for an unknown slug.
func (p *Provider) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range p.categories {
		if p.categories[i].Slug == slug {
			c := p.categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", slug, domain.ErrNotFound)
}

// GetCategoriesByIDs returns the categories that exist among ids.
func (p *Provider) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := p.categoryByID[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}
