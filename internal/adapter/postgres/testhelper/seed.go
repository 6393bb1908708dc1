package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAuthor inserts an author with a unique slug.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool) domain.Author {
	t.Helper()

	suffix := uniqueSuffix()
	author := domain.Author{
		ID:        uuid.New(),
		Name:      "Test Author " + suffix,
		Slug:      "test-author-" + suffix,
		Bio:       "कवि " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO authors (id, name, slug, bio, avatar_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		author.ID, author.Name, author.Slug, author.Bio, author.AvatarURL, author.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthor: %v", err)
	}
	return author
}

// SeedCategory inserts a category with a unique slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	category := domain.Category{
		ID:            uuid.New(),
		Name:          "श्रेणी " + suffix,
		NameEn:        "Category " + suffix,
		Slug:          "category-" + suffix,
		Description:   "विवरण",
		DescriptionEn: "Description",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, name_en, slug, description, description_en, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		category.ID, category.Name, category.NameEn, category.Slug,
		category.Description, category.DescriptionEn, category.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return category
}

// SeedPoem inserts a poem for the given author and optional category.
// publishedAt orders poems in listings.
func SeedPoem(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, categoryID *uuid.UUID, publishedAt time.Time) domain.Poem {
	t.Helper()

	suffix := uniqueSuffix()
	published := publishedAt.UTC().Truncate(time.Microsecond)
	poem := domain.Poem{
		ID:           uuid.New(),
		Title:        "कविता " + suffix,
		TitleRoman:   "Kavita " + suffix,
		Slug:         "kavita-" + suffix,
		Content:      "कल रात मच्छर के काटने से",
		ContentRoman: "kal raat machchar ke kaatne se",
		Excerpt:      "कल रात...",
		ExcerptRoman: "kal raat...",
		AuthorID:     authorID,
		CategoryID:   categoryID,
		PublishedAt:  published,
		CreatedAt:    published,
		UpdatedAt:    published,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO poems (id, title, title_roman, slug, content, content_roman, excerpt, excerpt_roman,
		                    author_id, category_id, is_featured, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		poem.ID, poem.Title, poem.TitleRoman, poem.Slug, poem.Content, poem.ContentRoman,
		poem.Excerpt, poem.ExcerptRoman, poem.AuthorID, poem.CategoryID, poem.IsFeatured,
		poem.PublishedAt, poem.CreatedAt, poem.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoem: %v", err)
	}
	return poem
}
