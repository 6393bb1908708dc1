package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kavita-backend/internal/adapter/postgres"
	pgcontent "github.com/heartmarshall/kavita-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/kavita-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/kavita-backend/internal/adapter/static"
	"github.com/heartmarshall/kavita-backend/internal/config"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// contentProvider is what the catalog and reader services and the
// readiness probe need from a content backend.
type contentProvider interface {
	ListPoems(ctx context.Context, filter domain.PoemFilter) ([]domain.Poem, error)
	GetPoemBySlug(ctx context.Context, slug string) (*domain.Poem, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthorBySlug(ctx context.Context, slug string) (*domain.Author, error)
	GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
	Ping(ctx context.Context) error
}

// Compile-time interface assertions.
var (
	_ contentProvider = (*static.Provider)(nil)
	_ contentProvider = (*sqlite.Repo)(nil)
	_ contentProvider = (*pgProvider)(nil)
)

// pgProvider answers readiness from the pool.
type pgProvider struct {
	*pgcontent.Repo
	pool *pgxpool.Pool
}

func (p *pgProvider) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

// openContent builds the configured provider. The returned close func
// releases its connections.
func openContent(ctx context.Context, cfg *config.Config, log *slog.Logger) (contentProvider, func(), error) {
	switch cfg.Content.Provider {
	case config.ProviderPostgres:
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return &pgProvider{Repo: pgcontent.New(pool), pool: pool}, pool.Close, nil

	case config.ProviderSQLite:
		db, err := sqlite.Open(ctx, cfg.Content.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db, log); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return sqlite.New(db), func() { db.Close() }, nil

	default:
		fx, err := LoadFixture(cfg.Content.FixturePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("static content loaded",
			slog.Int("authors", len(fx.Authors)),
			slog.Int("categories", len(fx.Categories)),
			slog.Int("poems", len(fx.Poems)),
		)
		return static.New(fx), func() {}, nil
	}
}

// LoadFixture reads the fixture at path, or the embedded default when path
// is empty.
func LoadFixture(path string) (*static.Fixture, error) {
	if path == "" {
		return static.DefaultFixture()
	}
	fsys, name, err := OSFile(path)
	if err != nil {
		return nil, err
	}
	return static.LoadFixture(fsys, name)
}
