package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/dataloader"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

//go:generate moq -out content_provider_mock_test.go -pkg catalog . contentProvider

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type testData struct {
	author   domain.Author
	category domain.Category
	poems    []domain.Poem
}

func newTestData() testData {
	author := domain.Author{ID: uuid.New(), Name: "Ashutosh Dubey", Slug: "ashutosh-dubey"}
	category := domain.Category{ID: uuid.New(), Name: "प्रेम", NameEn: "Love", Slug: "prem"}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	poems := []domain.Poem{
		{ID: uuid.New(), Slug: "sachcha-ashiq", AuthorID: author.ID, CategoryID: &category.ID, IsFeatured: true, PublishedAt: base.Add(48 * time.Hour)},
		{ID: uuid.New(), Slug: "baadal", AuthorID: author.ID, PublishedAt: base.Add(24 * time.Hour)},
		{ID: uuid.New(), Slug: "yaadein", AuthorID: author.ID, CategoryID: &category.ID, PublishedAt: base},
	}
	return testData{author: author, category: category, poems: poems}
}

// providerMock returns a mock whose ID lookups answer from d.
func (d testData) providerMock() *contentProviderMock {
	return &contentProviderMock{
		GetAuthorsByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.Author, error) {
			var out []domain.Author
			for _, id := range ids {
				if id == d.author.ID {
					out = append(out, d.author)
				}
			}
			return out, nil
		},
		GetCategoriesByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.Category, error) {
			var out []domain.Category
			for _, id := range ids {
				if id == d.category.ID {
					out = append(out, d.category)
				}
			}
			return out, nil
		},
	}
}

func newTestService(t *testing.T, content *contentProviderMock) *Service {
	t.Helper()
	return NewService(slog.Default(), content, Config{})
}

func slugsOf(poems []domain.PoemWithDetails) string {
	s := make([]string, len(poems))
	for i, p := range poems {
		s[i] = p.Slug
	}
	return strings.Join(s, ",")
}

// ---------------------------------------------------------------------------
// Home
// ---------------------------------------------------------------------------

func TestHome_FeaturedAndRecent(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	var mu sync.Mutex
	var filters []domain.PoemFilter
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		mu.Lock()
		filters = append(filters, f)
		mu.Unlock()
		if f.FeaturedOnly {
			return d.poems[:1], nil
		}
		return d.poems, nil
	}

	page, err := newTestService(t, content).Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := slugsOf(page.Featured); got != "sachcha-ashiq" {
		t.Errorf("featured: got %q", got)
	}
	if got := slugsOf(page.Recent); got != "sachcha-ashiq,baadal,yaadein" {
		t.Errorf("recent: got %q", got)
	}
	if page.Featured[0].Author == nil || page.Featured[0].Author.Name != "Ashutosh Dubey" {
		t.Errorf("featured author: got %+v", page.Featured[0].Author)
	}
	if page.Featured[0].Category == nil || page.Featured[0].Category.Slug != "prem" {
		t.Errorf("featured category: got %+v", page.Featured[0].Category)
	}
	if page.Recent[1].Category != nil {
		t.Errorf("uncategorized poem got category %+v", page.Recent[1].Category)
	}

	if len(filters) != 2 {
		t.Fatalf("ListPoems calls: got %d, want 2", len(filters))
	}
	for _, f := range filters {
		want := DefaultRecentLimit
		if f.FeaturedOnly {
			want = DefaultFeaturedLimit
		}
		if f.Limit != want {
			t.Errorf("limit for featured=%v: got %d, want %d", f.FeaturedOnly, f.Limit, want)
		}
	}
	if calls := len(content.GetAuthorsByIDsCalls()); calls > 2 {
		t.Errorf("author lookups should be batched: got %d calls", calls)
	}
}

func TestHome_ProviderError(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	boom := errors.New("connection refused")
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.FeaturedOnly {
			return nil, boom
		}
		return d.poems, nil
	}

	_, err := newTestService(t, content).Home(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestHome_ConfiguredLimits(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.FeaturedOnly && f.Limit != 5 {
			t.Errorf("featured limit: got %d, want 5", f.Limit)
		}
		if !f.FeaturedOnly && f.Limit != 10 {
			t.Errorf("recent limit: got %d, want 10", f.Limit)
		}
		return nil, nil
	}

	svc := NewService(slog.Default(), content, Config{FeaturedLimit: 5, RecentLimit: 10})
	page, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Featured) != 0 || len(page.Recent) != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}

// ---------------------------------------------------------------------------
// ListPoems
// ---------------------------------------------------------------------------

func TestListPoems_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input ListPoemsInput
		field string
	}{
		{name: "limit too large", input: ListPoemsInput{Limit: 101}, field: "limit"},
		{name: "negative limit", input: ListPoemsInput{Limit: -1}, field: "limit"},
		{name: "search too long", input: ListPoemsInput{Search: strings.Repeat("क", 201)}, field: "q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content := &contentProviderMock{}
			_, err := newTestService(t, content).ListPoems(context.Background(), tt.input)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Errors[0].Field != tt.field {
				t.Errorf("field: got %q, want %q", ve.Errors[0].Field, tt.field)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected errors.Is ErrValidation")
			}
		})
	}
}

func TestListPoems_ResolvesSlugs(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	content.GetAuthorBySlugFunc = func(_ context.Context, slug string) (*domain.Author, error) {
		if slug != "ashutosh-dubey" {
			t.Errorf("author slug: got %q", slug)
		}
		return &d.author, nil
	}
	content.GetCategoryBySlugFunc = func(_ context.Context, slug string) (*domain.Category, error) {
		return &d.category, nil
	}
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.AuthorID == nil || *f.AuthorID != d.author.ID {
			t.Errorf("author filter: got %v", f.AuthorID)
		}
		if f.CategoryID == nil || *f.CategoryID != d.category.ID {
			t.Errorf("category filter: got %v", f.CategoryID)
		}
		if f.Search != "machchar" {
			t.Errorf("search: got %q", f.Search)
		}
		if f.Limit != DefaultListLimit {
			t.Errorf("limit: got %d, want %d", f.Limit, DefaultListLimit)
		}
		return []domain.Poem{d.poems[0], d.poems[2]}, nil
	}

	poems, err := newTestService(t, content).ListPoems(context.Background(), ListPoemsInput{
		Search:       "  machchar ",
		AuthorSlug:   "ashutosh-dubey",
		CategorySlug: "prem",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slugsOf(poems); got != "sachcha-ashiq,yaadein" {
		t.Errorf("poems: got %q", got)
	}
}

func TestListPoems_UnknownCategory(t *testing.T) {
	t.Parallel()

	content := &contentProviderMock{
		GetCategoryBySlugFunc: func(_ context.Context, slug string) (*domain.Category, error) {
			return nil, domain.ErrNotFound
		},
	}

	_, err := newTestService(t, content).ListPoems(context.Background(), ListPoemsInput{CategorySlug: "nope"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(content.ListPoemsCalls()) != 0 {
		t.Errorf("ListPoems should not be called")
	}
}

func TestListPoems_MissingAuthorLeavesNil(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	orphan := domain.Poem{ID: uuid.New(), Slug: "orphan", AuthorID: uuid.New()}
	content.ListPoemsFunc = func(context.Context, domain.PoemFilter) ([]domain.Poem, error) {
		return []domain.Poem{orphan}, nil
	}

	poems, err := newTestService(t, content).ListPoems(context.Background(), ListPoemsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if poems[0].Author != nil {
		t.Errorf("expected nil author, got %+v", poems[0].Author)
	}
}

func TestListPoems_UsesRequestLoaders(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	content.ListPoemsFunc = func(context.Context, domain.PoemFilter) ([]domain.Poem, error) {
		return d.poems, nil
	}
	svc := newTestService(t, content)

	ctx := dataloader.WithLoaders(context.Background(), dataloader.NewLoaders(svc.Loaders()))
	for range 2 {
		if _, err := svc.ListPoems(ctx, ListPoemsInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if calls := len(content.GetAuthorsByIDsCalls()); calls != 1 {
		t.Errorf("request-scoped loader should cache authors: got %d lookups", calls)
	}
}

// ---------------------------------------------------------------------------
// GetPoem
// ---------------------------------------------------------------------------

func TestGetPoem_WithRelated(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	poem := d.poems[0]
	content.GetPoemBySlugFunc = func(_ context.Context, slug string) (*domain.Poem, error) {
		return &poem, nil
	}
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.Related == nil {
			t.Fatalf("expected related filter")
		}
		if f.Related.PoemID != poem.ID || f.Related.AuthorID != poem.AuthorID || f.Related.CategoryID != poem.CategoryID {
			t.Errorf("related filter: got %+v", f.Related)
		}
		if f.Limit != DefaultRelatedLimit {
			t.Errorf("related limit: got %d", f.Limit)
		}
		return d.poems[1:], nil
	}

	page, err := newTestService(t, content).GetPoem(context.Background(), "sachcha-ashiq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Poem.Slug != "sachcha-ashiq" || page.Poem.Author == nil || page.Poem.Category == nil {
		t.Errorf("poem details: got %+v", page.Poem)
	}
	if got := slugsOf(page.Related); got != "baadal,yaadein" {
		t.Errorf("related: got %q", got)
	}
}

func TestGetPoem_Errors(t *testing.T) {
	t.Parallel()

	content := &contentProviderMock{
		GetPoemBySlugFunc: func(context.Context, string) (*domain.Poem, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, content)

	if _, err := svc.GetPoem(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing: got %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPoem(context.Background(), "  "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank slug: got %v, want ErrValidation", err)
	}
	if len(content.GetPoemBySlugCalls()) != 1 {
		t.Errorf("blank slug should not reach the provider")
	}
}

// ---------------------------------------------------------------------------
// Authors and categories
// ---------------------------------------------------------------------------

func TestGetAuthorProfile(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	content.GetAuthorBySlugFunc = func(context.Context, string) (*domain.Author, error) {
		return &d.author, nil
	}
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.AuthorID == nil || *f.AuthorID != d.author.ID || f.Limit != 0 {
			t.Errorf("filter: got %+v", f)
		}
		return d.poems, nil
	}

	profile, err := newTestService(t, content).GetAuthorProfile(context.Background(), "ashutosh-dubey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Author.ID != d.author.ID || len(profile.Poems) != 3 {
		t.Errorf("profile: got %s with %d poems", profile.Author.Name, len(profile.Poems))
	}
}

func TestGetCategory(t *testing.T) {
	t.Parallel()

	d := newTestData()
	content := d.providerMock()
	content.GetCategoryBySlugFunc = func(context.Context, string) (*domain.Category, error) {
		return &d.category, nil
	}
	content.ListPoemsFunc = func(_ context.Context, f domain.PoemFilter) ([]domain.Poem, error) {
		if f.CategoryID == nil || *f.CategoryID != d.category.ID {
			t.Errorf("filter: got %+v", f)
		}
		return []domain.Poem{d.poems[0], d.poems[2]}, nil
	}

	page, err := newTestService(t, content).GetCategory(context.Background(), "prem")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Category.NameEn != "Love" || slugsOf(page.Poems) != "sachcha-ashiq,yaadein" {
		t.Errorf("page: got %+v", page)
	}

	content.GetCategoryBySlugFunc = func(context.Context, string) (*domain.Category, error) {
		return nil, domain.ErrNotFound
	}
	if _, err := newTestService(t, content).GetCategory(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing: got %v", err)
	}
}

func TestListAuthorsAndCategories_WrapErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("timeout")
	content := &contentProviderMock{
		ListAuthorsFunc:    func(context.Context) ([]domain.Author, error) { return nil, boom },
		ListCategoriesFunc: func(context.Context) ([]domain.Category, error) { return []domain.Category{{Slug: "prem"}}, nil },
	}
	svc := newTestService(t, content)

	if _, err := svc.ListAuthors(context.Background()); !errors.Is(err, boom) {
		t.Errorf("ListAuthors: got %v", err)
	}
	categories, err := svc.ListCategories(context.Background())
	if err != nil || len(categories) != 1 {
		t.Errorf("ListCategories: got %v, %v", categories, err)
	}
}
