// Command seeder loads a poetry fixture (authors, categories, poems) into
// the configured database. It is intended to be run offline, not as part of
// the main server.
//
// Flags:
//
//	--fixture          path to fixture JSON (default: embedded fixture)
//	--dry-run          parse the fixture without writing to DB
//	--seeder-config    path to seeder YAML config file
//	--export-glossary  write the built-in glossary to this path and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/kavita-backend/internal/adapter/postgres"
	pgcontent "github.com/heartmarshall/kavita-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/kavita-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/kavita-backend/internal/app"
	"github.com/heartmarshall/kavita-backend/internal/app/seeder"
	"github.com/heartmarshall/kavita-backend/internal/config"
	"github.com/heartmarshall/kavita-backend/internal/gloss"
)

// Compile-time interface assertions.
var (
	_ seeder.ContentRepo = (*pgcontent.Repo)(nil)
	_ seeder.ContentRepo = (*sqlite.Repo)(nil)
	_ seeder.TxManager   = (*postgres.TxManager)(nil)
	_ seeder.TxManager   = (*sqlite.TxManager)(nil)
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to fixture JSON (default: embedded)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	exportFlag := flag.String("export-glossary", "", "write the built-in glossary to this path and exit")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	if *exportFlag != "" {
		if err := exportGlossary(*exportFlag); err != nil {
			logger.Error("export glossary", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("glossary exported", slog.String("path", *exportFlag))
		return
	}

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *fixtureFlag != "" {
		seederCfg.FixturePath = *fixtureFlag
	}
	if seederCfg.FixturePath == "" {
		seederCfg.FixturePath = appCfg.Content.FixturePath
	}

	fx, err := app.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// A dry run only validates the fixture and never touches the store.
	var (
		repo seeder.ContentRepo
		txm  seeder.TxManager
	)
	if !seederCfg.DryRun {
		var closeDB func()
		repo, txm, closeDB, err = openStore(ctx, appCfg, logger)
		if err != nil {
			logger.Error("open database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer closeDB()
	}

	pipeline := seeder.NewPipeline(logger, repo, txm, *seederCfg)
	if err := pipeline.Run(ctx, fx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully",
		slog.Int("authors", len(fx.Authors)),
		slog.Int("categories", len(fx.Categories)),
		slog.Int("poems", len(fx.Poems)),
	)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (seeder.ContentRepo, seeder.TxManager, func(), error) {
	switch cfg.Content.Provider {
	case config.ProviderSQLite:
		db, err := sqlite.Open(ctx, cfg.Content.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db, logger); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return sqlite.New(db), sqlite.NewTxManager(db), func() { db.Close() }, nil
	case config.ProviderPostgres:
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		return pgcontent.New(pool), postgres.NewTxManager(pool), pool.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("content provider %q has no database to seed", cfg.Content.Provider)
	}
}

func exportGlossary(path string) error {
	fsys, name, err := app.OSFile(path)
	if err != nil {
		return err
	}
	return gloss.Save(fsys, name, gloss.Builtin())
}
