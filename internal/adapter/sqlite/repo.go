package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// tagSeparator is char(31), the group_concat separator for tag names.
const tagSeparator = "\x1f"

// Repo provides content persistence backed by SQLite.
type Repo struct {
	db Querier
}

// New creates a content repository over db (usually a *sql.DB from Open).
func New(db Querier) *Repo {
	return &Repo{db: db}
}

// Ping checks the database connection when db supports it.
func (r *Repo) Ping(ctx context.Context) error {
	if p, ok := r.db.(interface{ PingContext(context.Context) error }); ok {
		return p.PingContext(ctx)
	}
	return ctx.Err()
}

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
	Tags             string     `db:"tags"`
}

func (r poemRow) toDomain() domain.Poem {
	tags := []string{}
	if r.Tags != "" {
		tags = strings.Split(r.Tags, tagSeparator)
		slices.Sort(tags)
	}
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
		Tags:             tags,
	}
}

var (
	authorColumns   = []string{"id", "name", "slug", "bio", "avatar_url", "created_at"}
	categoryColumns = []string{"id", "name", "name_en", "slug", "description", "description_en", "created_at"}
	poemColumns     = []string{
		"p.id", "p.title", "p.title_roman", "p.slug", "p.content", "p.content_roman",
		"p.excerpt", "p.excerpt_roman", "p.author_id", "p.category_id", "p.featured_image_url",
		"p.is_featured", "p.published_at", "p.created_at", "p.updated_at",
		"COALESCE(group_concat(t.name, char(31)), '') AS tags",
	}
)

func poemSelect() sq.SelectBuilder {
	return sq.Select(poemColumns...).
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
	q := applyFilter(poemSelect(), filter).OrderBy("p.published_at DESC", "p.id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list poems query: %w", err)
	}

	var rows []poemRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}

	poems := make([]domain.Poem, len(rows))
	for i, row := range rows {
		poems[i] = row.toDomain()
	}
	return poems, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyFilter(q sq.SelectBuilder, f domain.PoemFilter) sq.SelectBuilder {
	if f.AuthorID != nil {
		q = q.Where(sq.Eq{"p.author_id": f.AuthorID.String()})
	}
	if f.CategoryID != nil {
		q = q.Where(sq.Eq{"p.category_id": f.CategoryID.String()})
	}
	if f.FeaturedOnly {
		q = q.Where(sq.Eq{"p.is_featured": true})
	}
	if rel := f.Related; rel != nil {
		same := sq.Or{sq.Eq{"p.author_id": rel.AuthorID.String()}}
		if rel.CategoryID != nil {
			same = append(same, sq.Eq{"p.category_id": rel.CategoryID.String()})
		}
		q = q.Where(sq.NotEq{"p.id": rel.PoemID.String()}).Where(same)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		// lower() folds ASCII only, which covers the romanized columns;
		// Devanagari has no case.
		pattern := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		or := sq.Or{}
		for _, col := range []string{"p.title", "p.title_roman", "p.content", "p.content_roman", "a.name"} {
			or = append(or, sq.Expr("lower("+col+`) LIKE ? ESCAPE '\'`, pattern))
		}
		q = q.Where(or)
	}
	return q
}

// GetPoemBySlug returns domain.ErrNotFound if no poem has the slug.
func (r *Repo) GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error) {
	query, args, err := poemSelect().Where(sq.Eq{"p.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get poem query: %w", err)
	}

	var row poemRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "poem", slug)
	}
	poem := row.toDomain()
	return &poem, nil
}

// ---------------------------------------------------------------------------
// Authors
// ---------------------------------------------------------------------------

// ListAuthors returns all authors ordered by name.
func (r *Repo) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return r.selectAuthors(ctx, sq.Select(authorColumns...).From("authors").OrderBy("name"))
}

// GetAuthorBySlug returns domain.ErrNotFound if no author has the slug.
func (r *Repo) GetAuthorBySlug(ctx context.Context, slug string) (*domain.Author, error) {
	query, args, err := sq.Select(authorColumns...).From("authors").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get author query: %w", err)
	}

	var row authorRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "author", slug)
	}
	a := row.toDomain()
	return &a, nil
}

// GetAuthorsByIDs returns the authors among ids. Missing IDs are skipped.
func (r *Repo) GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error) {
	if len(ids) == 0 {
		return []domain.Author{}, nil
	}
	return r.selectAuthors(ctx, sq.Select(authorColumns...).From("authors").Where(sq.Eq{"id": idStrings(ids)}))
}

func (r *Repo) selectAuthors(ctx context.Context, q sq.SelectBuilder) ([]domain.Author, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build authors query: %w", err)
	}

	var rows []authorRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
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
	return r.selectCategories(ctx, sq.Select(categoryColumns...).From("categories").OrderBy("name"))
}

// GetCategoryBySlug returns domain.ErrNotFound if no category has the slug.
func (r *Repo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query, args, err := sq.Select(categoryColumns...).From("categories").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var row categoryRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "category", slug)
	}
	c := row.toDomain()
	return &c, nil
}

// GetCategoriesByIDs returns the categories among ids. Missing IDs are skipped.
func (r *Repo) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	return r.selectCategories(ctx, sq.Select(categoryColumns...).From("categories").Where(sq.Eq{"id": idStrings(ids)}))
}

func (r *Repo) selectCategories(ctx context.Context, q sq.SelectBuilder) ([]domain.Category, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	var rows []categoryRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toDomain()
	}
	return categories, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// ---------------------------------------------------------------------------
// Seeding (insert if the slug is free)
// ---------------------------------------------------------------------------

const ensureAuthorSQL = `
INSERT INTO authors (id, name, slug, bio, avatar_url, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensureCategorySQL = `
INSERT INTO categories (id, name, name_en, slug, description, description_en, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensurePoemSQL = `
INSERT INTO poems (id, title, title_roman, slug, content, content_roman, excerpt, excerpt_roman,
                   author_id, category_id, featured_image_url, is_featured, published_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (slug) DO NOTHING
RETURNING id`

const ensureTagSQL = `
INSERT INTO tags (id, name) VALUES (?, ?)
ON CONFLICT (name) DO NOTHING`

const linkPoemTagSQL = `
INSERT INTO poem_tags (poem_id, tag_id)
SELECT ?, id FROM tags WHERE name = ?
ON CONFLICT (poem_id, tag_id) DO NOTHING`

// EnsureAuthor inserts a unless an author with the same slug exists. It
// returns the stored ID and whether a row was created.
func (r *Repo) EnsureAuthor(ctx context.Context, a *domain.Author) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, ensureAuthorSQL,
		a.ID, a.Name, a.Slug, a.Bio, a.AvatarURL, a.CreatedAt.UTC(),
	).Scan(&id)
	return r.resolveExisting(ctx, err, id, "authors", a.Slug)
}

// EnsureCategory inserts c unless a category with the same slug exists.
func (r *Repo) EnsureCategory(ctx context.Context, c *domain.Category) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, ensureCategorySQL,
		c.ID, c.Name, c.NameEn, c.Slug, c.Description, c.DescriptionEn, c.CreatedAt.UTC(),
	).Scan(&id)
	return r.resolveExisting(ctx, err, id, "categories", c.Slug)
}

// EnsurePoem inserts p unless a poem with the same slug exists. Tags are
// attached only to newly created poems.
func (r *Repo) EnsurePoem(ctx context.Context, p *domain.Poem) (uuid.UUID, bool, error) {
	q := QuerierFromCtx(ctx, r.db)
	var id uuid.UUID
	err := q.QueryRowContext(ctx, ensurePoemSQL,
		p.ID, p.Title, p.TitleRoman, p.Slug, p.Content, p.ContentRoman, p.Excerpt, p.ExcerptRoman,
		p.AuthorID, p.CategoryID, p.FeaturedImageURL, p.IsFeatured,
		p.PublishedAt.UTC(), p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	).Scan(&id)
	id, created, err := r.resolveExisting(ctx, err, id, "poems", p.Slug)
	if err != nil || !created {
		return id, created, err
	}

	for _, name := range p.Tags {
		if _, err := q.ExecContext(ctx, ensureTagSQL, uuid.New(), name); err != nil {
			return uuid.Nil, false, mapError(err, "tag", name)
		}
		if _, err := q.ExecContext(ctx, linkPoemTagSQL, id, name); err != nil {
			return uuid.Nil, false, mapError(err, "poem tag", name)
		}
	}
	return id, true, nil
}

func (r *Repo) resolveExisting(ctx context.Context, err error, id uuid.UUID, table, slug string) (uuid.UUID, bool, error) {
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, mapError(err, table, slug)
	}

	query, args, buildErr := sq.Select("id").From(table).Where(sq.Eq{"slug": slug}).ToSql()
	if buildErr != nil {
		return uuid.Nil, false, fmt.Errorf("build %s lookup: %w", table, buildErr)
	}
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, false, mapError(err, table, slug)
	}
	return id, false, nil
}

// mapError converts database/sql and SQLite errors into domain errors.
func mapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	switch {
	case errors.Is(err, sqlite3.CONSTRAINT_UNIQUE), errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY):
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
	case errors.Is(err, sqlite3.CONSTRAINT_FOREIGNKEY):
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	case errors.Is(err, sqlite3.CONSTRAINT_CHECK), errors.Is(err, sqlite3.CONSTRAINT_NOTNULL):
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
