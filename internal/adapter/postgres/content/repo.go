// Package content implements the poem, author and category repository on
// PostgreSQL. Reads are built with squirrel and scanned with scany; the
// upserts used by the seeder are plain SQL.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/kavita-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides content persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new content repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type authorRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Bio       string    `db:"bio"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
}

func (r authorRow) toDomain() domain.Author {
	return domain.Author{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		Bio:       r.Bio,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
	}
}

type categoryRow struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	NameEn        string    `db:"name_en"`
	Slug          string    `db:"slug"`
	Description   string    `db:"description"`
	DescriptionEn string    `db:"description_en"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:            r.ID,
		Name:          r.Name,
		NameEn:        r.NameEn,
		Slug:          r.Slug,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		CreatedAt:     r.CreatedAt,
	}
}

type poemRow struct {
	ID               uuid.UUID  `db:"id"`
	Title            string     `db:"title"`
	TitleRoman       string     `db:"title_roman"`
	Slug             string     `db:"slug"`
	Content          string     `db:"content"`
	ContentRoman     string     `db:"content_roman"`
	Excerpt          string     `db:"excerpt"`
	ExcerptRoman     string     `db:"excerpt_roman"`
	AuthorID         uuid.UUID  `db:"author_id"`
	CategoryID       *uuid.UUID `db:"category_id"`
	FeaturedImageURL *string    `db:"featured_image_url"`
	IsFeatured       bool       `db:"is_featured"`
	PublishedAt      time.Time  `db:"published_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	Tags             []string   `db:"tags"`
}

func (r poemRow) toDomain() domain.Poem {
	return domain.Poem{
		ID:               r.ID,
		Title:            r.Title,
		TitleRoman:       r.TitleRoman,
		Slug:             r.Slug,
		Content:          r.Content,
		ContentRoman:     r.ContentRoman,
		Excerpt:          r.Excerpt,
		ExcerptRoman:     r.ExcerptRoman,
		AuthorID:         r.AuthorID,
		CategoryID:       r.CategoryID,
		FeaturedImageURL: r.FeaturedImageURL,
		IsFeatured:       r.IsFeatured,
		PublishedAt:      r.PublishedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		Tags:             r.Tags,
	}
}

var (
	authorColumns   = []string{"id", "name", "slug", "bio", "avatar_url", "created_at"}
	categoryColumns = []string{"id", "name", "name_en", "slug", "description", "description_en", "created_at"}
	poemColumns     = []string{
		"p.id", "p.title", "p.title_roman", "p.slug", "p.content", "p.content_roman",
		"p.excerpt", "p.excerpt_roman", "p.author_id", "p.category_id", "p.featured_image_url",
		"p.is_featured", "p.published_at", "p.created_at", "p.updated_at",
		"COALESCE(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags",
	}
)

// poemSelect is the base poem query: one row per poem with its tag names.
func poemSelect() sq.SelectBuilder {
	return psql.Select(poemColumns...).
		From("poems p").
		Join("authors a ON a.id = p.author_id").
		LeftJoin("poem_tags pt ON pt.poem_id = p.id").
		LeftJoin("tags t ON t.id = pt.tag_id").
		GroupBy("p.id")
}

// ---------------------------------------------------------------------------
// Poems
// ---------------------------------------------------------------------------

// ListPoems returns poems matching filter ordered by published_at DESC.
func (r *Repo) ListPoems(ctx context.Context, filter domain.PoemFilter) ([]domain.Poem, error) {
	query := applyFilter(poemSelect(), filter).OrderBy("p.published_at DESC", "p.id")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list poems query: %w", err)
	}

	var rows []poemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}

	poems := make([]domain.Poem, len(rows))
	for i, row := range rows {
		poems[i] = row.toDomain()
	}
	return poems, nil
}

func applyFilter(q sq.SelectBuilder, f domain.PoemFilter) sq.SelectBuilder {
	if f.AuthorID != nil {
		q = q.Where(sq.Eq{"p.author_id": *f.AuthorID})
	}
	if f.CategoryID != nil {
		q = q.Where(sq.Eq{"p.category_id": *f.CategoryID})
	}
	if f.FeaturedOnly {
		q = q.Where(sq.Eq{"p.is_featured": true})
	}
	if rel := f.Related; rel != nil {
		same := sq.Or{sq.Eq{"p.author_id": rel.AuthorID}}
		if rel.CategoryID != nil {
			same = append(same, sq.Eq{"p.category_id": *rel.CategoryID})
		}
		q = q.Where(sq.NotEq{"p.id": rel.PoemID}).Where(same)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + likeEscaper.Replace(s) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.title_roman": pattern},
			sq.ILike{"p.content": pattern},
			sq.ILike{"p.content_roman": pattern},
			sq.ILike{"a.name": pattern},
		})
	}
	return q
}

// scanErr normalizes scany's empty-result error to pgx.ErrNoRows.
func scanErr(err error) error {
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetPoemBySlug returns domain.ErrNotFound if no poem has the slug.
func (r *Repo) GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error) {
	sql, args, err := poemSelect().Where(sq.Eq{"p.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get poem query: %w", err)
	}

	var row poemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(scanErr(err), "poem", slug)
	}
	poem := row.toDomain()
	return &poem, nil
}

// ---------------------------------------------------------------------------
// Authors
// ---------------------------------------------------------------------------

// ListAuthors returns all authors ordered by name.
func (r *Repo) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return r.selectAuthors(ctx, psql.Select(authorColumns...).From("authors").OrderBy("name"))
}

// GetAuthorBySlug returns domain.ErrNotFound if no author has the slug.
func (r *Repo) GetAuthorBySlug(ctx context.Context, slug string) (*domain.Author, error) {
	sql, args, err := psql.Select(authorColumns...).From("authors").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get author query: %w", err)
	}

	var row authorRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(scanErr(err), "author", slug)
	}
	a := row.toDomain()
	return &a, nil
}

// GetAuthorsByIDs returns the authors among ids. Missing IDs are skipped.
func (r *Repo) GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error) {
	if len(ids) == 0 {
		return []domain.Author{}, nil
	}
	return r.selectAuthors(ctx, psql.Select(authorColumns...).From("authors").Where(sq.Eq{"id": ids}))
}

func (r *Repo) selectAuthors(ctx context.Context, query sq.SelectBuilder) ([]domain.Author, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build authors query: %w", err)
	}

	var rows []authorRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}

	authors := make([]domain.Author, len(rows))
	for i, row := range rows {
		authors[i] = row.toDomain()
	}
	return authors, nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns all categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return r.selectCategories(ctx, psql.Select(categoryColumns...).From("categories").OrderBy("name"))
}

// GetCategoryBySlug returns domain.ErrNotFound if no category has the slug.
func (r *Repo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	sql, args, err := psql.Select(categoryColumns...).From("categories").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(scanErr(err), "category", slug)
	}
	c := row.toDomain()
	return &c, nil
}

// GetCategoriesByIDs returns the categories among ids. Missing IDs are skipped.
func (r *Repo) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	return r.selectCategories(ctx, psql.Select(categoryColumns...).From("categories").Where(sq.Eq{"id": ids}))
}

func (r *Repo) selectCategories(ctx context.Context, query sq.SelectBuilder) ([]domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toDomain()
	}
	return categories, nil
}

// ---------------------------------------------------------------------------
// Seeding (insert if the slug is free)
// ---------------------------------------------------------------------------

const ensureAuthorSQL = `
INSERT INTO authors (id, name, slug, bio, avatar_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensureCategorySQL = `
INSERT INTO categories (id, name, name_en, slug, description, description_en, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensurePoemSQL = `
INSERT INTO poems (id, title, title_roman, slug, content, content_roman, excerpt, excerpt_roman,
                   author_id, category_id, featured_image_url, is_featured, published_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensureTagSQL = `
WITH ins AS (
    INSERT INTO tags (id, name) VALUES ($1, $2)
    ON CONFLICT (name) DO NOTHING
    RETURNING id
)
SELECT id FROM ins
UNION ALL
SELECT id FROM tags WHERE name = $2
LIMIT 1`

const linkPoemTagSQL = `
INSERT INTO poem_tags (poem_id, tag_id) VALUES ($1, $2)
ON CONFLICT (poem_id, tag_id) DO NOTHING`

// EnsureAuthor inserts a unless an author with the same slug exists. It
// returns the stored ID and whether a row was created.
func (r *Repo) EnsureAuthor(ctx context.Context, a *domain.Author) (uuid.UUID, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	var id uuid.UUID
	err := q.QueryRow(ctx, ensureAuthorSQL, a.ID, a.Name, a.Slug, a.Bio, a.AvatarURL, a.CreatedAt).Scan(&id)
	return r.resolveExisting(ctx, err, id, "authors", a.Slug)
}

// EnsureCategory inserts c unless a category with the same slug exists.
func (r *Repo) EnsureCategory(ctx context.Context, c *domain.Category) (uuid.UUID, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	var id uuid.UUID
	err := q.QueryRow(ctx, ensureCategorySQL,
		c.ID, c.Name, c.NameEn, c.Slug, c.Description, c.DescriptionEn, c.CreatedAt,
	).Scan(&id)
	return r.resolveExisting(ctx, err, id, "categories", c.Slug)
}

// EnsurePoem inserts p unless a poem with the same slug exists. Tags are
// attached only to newly created poems.
func (r *Repo) EnsurePoem(ctx context.Context, p *domain.Poem) (uuid.UUID, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	var id uuid.UUID
	err := q.QueryRow(ctx, ensurePoemSQL,
		p.ID, p.Title, p.TitleRoman, p.Slug, p.Content, p.ContentRoman, p.Excerpt, p.ExcerptRoman,
		p.AuthorID, p.CategoryID, p.FeaturedImageURL, p.IsFeatured, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	id, created, err := r.resolveExisting(ctx, err, id, "poems", p.Slug)
	if err != nil || !created {
		return id, created, err
	}

	for _, name := range p.Tags {
		var tagID uuid.UUID
		if err := q.QueryRow(ctx, ensureTagSQL, uuid.New(), name).Scan(&tagID); err != nil {
			return uuid.Nil, false, postgres.MapError(err, "tag", name)
		}
		if _, err := q.Exec(ctx, linkPoemTagSQL, id, tagID); err != nil {
			return uuid.Nil, false, postgres.MapError(err, "poem tag", name)
		}
	}
	return id, true, nil
}

// resolveExisting turns the "ON CONFLICT DO NOTHING" no-row result into a
// lookup of the existing row's ID.
func (r *Repo) resolveExisting(ctx context.Context, err error, id uuid.UUID, table, slug string) (uuid.UUID, bool, error) {
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, postgres.MapError(err, table, slug)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	sql, args, buildErr := psql.Select("id").From(table).Where(sq.Eq{"slug": slug}).ToSql()
	if buildErr != nil {
		return uuid.Nil, false, fmt.Errorf("build %s lookup: %w", table, buildErr)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, false, postgres.MapError(err, table, slug)
	}
	return id, false, nil
}
