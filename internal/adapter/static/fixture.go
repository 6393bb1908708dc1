// Package static serves poems, authors and categories from an in-memory
// dataset. The dataset comes from the embedded fixture or from a JSON file
// in the same format.
package static

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hack-pad/hackpadfs"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

//go:embed fixture.json
var defaultFixture []byte

// idNamespace derives stable IDs for fixture rows that omit one.
var idNamespace = uuid.MustParse("0b5c8f4e-7f7a-4d8e-9c61-2f6a3b1d5e90")

// Fixture is a complete content dataset.
type Fixture struct {
	Authors    []domain.Author
	Categories []domain.Category
	Poems      []domain.Poem
}

type fixtureFile struct {
	Authors    []fixtureAuthor   `json:"authors"`
	Categories []fixtureCategory `json:"categories"`
	Poems      []fixturePoem     `json:"poems"`
}

type fixtureAuthor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Bio       string    `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type fixtureCategory struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"name_en"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	CreatedAt     time.Time `json:"created_at"`
}

type fixturePoem struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	TitleRoman       string    `json:"titleRoman"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	ContentRoman     string    `json:"contentRoman"`
	Excerpt          string    `json:"excerpt"`
	ExcerptRoman     string    `json:"excerptRoman"`
	AuthorID         string    `json:"author_id"`
	CategoryID       *string   `json:"category_id"`
	FeaturedImageURL *string   `json:"featured_image_url"`
	IsFeatured       bool      `json:"is_featured"`
	Tags             []string  `json:"tags"`
	PublishedAt      time.Time `json:"published_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultFixture returns the dataset compiled into the binary.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture, time.Now().UTC())
}

// LoadFixture reads a dataset from path in fsys.
func LoadFixture(fsys hackpadfs.FS, path string) (*Fixture, error) {
	content, err := hackpadfs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	fx, err := ParseFixture(content, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

// ParseFixture decodes and validates a dataset. Missing slugs are derived
// from names and titles, missing IDs from slugs, and missing timestamps are
// set to now. Poems must reference existing authors and categories.
func ParseFixture(content []byte, now time.Time) (*Fixture, error) {
	var raw fixtureFile
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	var errs []domain.FieldError
	fail := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	fx := &Fixture{
		Authors:    make([]domain.Author, 0, len(raw.Authors)),
		Categories: make([]domain.Category, 0, len(raw.Categories)),
		Poems:      make([]domain.Poem, 0, len(raw.Poems)),
	}

	// Fixture IDs are either UUIDs or short keys ("1") as in hand-written
	// datasets; short keys map to derived UUIDs.
	authorIDs := make(map[string]uuid.UUID, len(raw.Authors))
	categoryIDs := make(map[string]uuid.UUID, len(raw.Categories))
	slugs := make(map[string]string)

	claimSlug := func(kind, field, slug string) {
		key := kind + "/" + slug
		if prev, ok := slugs[key]; ok {
			fail(field, fmt.Sprintf("duplicate slug %q (also %s)", slug, prev))
			return
		}
		slugs[key] = field
	}

	for i, a := range raw.Authors {
		field := fmt.Sprintf("authors[%d]", i)
		if strings.TrimSpace(a.Name) == "" {
			fail(field+".name", "required")
			continue
		}
		slug := a.Slug
		if slug == "" {
			slug = domain.Slugify(a.Name)
		}
		if slug == "" {
			fail(field+".slug", "cannot be derived from name")
			continue
		}
		claimSlug("author", field, slug)

		id := resolveID(a.ID, "author/"+slug)
		if a.ID != "" {
			authorIDs[a.ID] = id
		}
		fx.Authors = append(fx.Authors, domain.Author{
			ID:        id,
			Name:      a.Name,
			Slug:      slug,
			Bio:       a.Bio,
			AvatarURL: a.AvatarURL,
			CreatedAt: orNow(a.CreatedAt, now),
		})
	}

	for i, c := range raw.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(c.Name) == "" {
			fail(field+".name", "required")
			continue
		}
		slug := c.Slug
		if slug == "" {
			slug = domain.SlugFor(c.Name, c.NameEn)
		}
		if slug == "" {
			fail(field+".slug", "cannot be derived from name")
			continue
		}
		claimSlug("category", field, slug)

		id := resolveID(c.ID, "category/"+slug)
		if c.ID != "" {
			categoryIDs[c.ID] = id
		}
		fx.Categories = append(fx.Categories, domain.Category{
			ID:            id,
			Name:          c.Name,
			NameEn:        c.NameEn,
			Slug:          slug,
			Description:   c.Description,
			DescriptionEn: c.DescriptionEn,
			CreatedAt:     orNow(c.CreatedAt, now),
		})
	}

	for i, p := range raw.Poems {
		field := fmt.Sprintf("poems[%d]", i)
		if strings.TrimSpace(p.Title) == "" {
			fail(field+".title", "required")
		}
		if strings.TrimSpace(p.Content) == "" {
			fail(field+".content", "required")
		}
		authorID, ok := authorIDs[p.AuthorID]
		if !ok {
			fail(field+".author_id", fmt.Sprintf("unknown author %q", p.AuthorID))
		}
		var categoryID *uuid.UUID
		if p.CategoryID != nil && *p.CategoryID != "" {
			id, ok := categoryIDs[*p.CategoryID]
			if !ok {
				fail(field+".category_id", fmt.Sprintf("unknown category %q", *p.CategoryID))
			}
			categoryID = &id
		}

		slug := p.Slug
		if slug == "" {
			slug = domain.SlugFor(p.Title, p.TitleRoman)
		}
		if slug == "" {
			fail(field+".slug", "cannot be derived from title")
			continue
		}
		claimSlug("poem", field, slug)

		published := orNow(p.PublishedAt, now)
		fx.Poems = append(fx.Poems, domain.Poem{
			ID:               resolveID(p.ID, "poem/"+slug),
			Title:            p.Title,
			TitleRoman:       p.TitleRoman,
			Slug:             slug,
			Content:          p.Content,
			ContentRoman:     p.ContentRoman,
			Excerpt:          p.Excerpt,
			ExcerptRoman:     p.ExcerptRoman,
			AuthorID:         authorID,
			CategoryID:       categoryID,
			FeaturedImageURL: p.FeaturedImageURL,
			IsFeatured:       p.IsFeatured,
			Tags:             p.Tags,
			PublishedAt:      published,
			CreatedAt:        orNow(p.CreatedAt, published),
			UpdatedAt:        orNow(p.UpdatedAt, published),
		})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return fx, nil
}

func resolveID(raw, key string) uuid.UUID {
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	if raw != "" {
		key = "key/" + raw
	}
	return uuid.NewSHA1(idNamespace, []byte(key))
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
