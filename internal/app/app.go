package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/kavita-backend/internal/config"
	"github.com/heartmarshall/kavita-backend/internal/dataloader"
	"github.com/heartmarshall/kavita-backend/internal/gloss"
	"github.com/heartmarshall/kavita-backend/internal/service/catalog"
	"github.com/heartmarshall/kavita-backend/internal/service/reader"
	"github.com/heartmarshall/kavita-backend/internal/transport/middleware"
	"github.com/heartmarshall/kavita-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// content provider, builds the services and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("content_provider", cfg.Content.Provider),
	)

	content, closeContent, err := openContent(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open content: %w", err)
	}
	defer closeContent()

	glossary, err := LoadGlossary(cfg.Glossary.Path)
	if err != nil {
		return err
	}
	logger.Info("glossary loaded", slog.Int("entries", glossary.Len()))

	handler, stop, err := newHandler(cfg, logger, content, glossary)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires services, handlers and the middleware chain. stop
// releases background workers.
func newHandler(cfg *config.Config, logger *slog.Logger, content contentProvider, glossary *gloss.Glossary) (http.Handler, func(), error) {
	catalogSvc := catalog.NewService(logger, content, catalog.Config{
		FeaturedLimit: cfg.Content.FeaturedSize,
		RecentLimit:   cfg.Content.RecentSize,
		RelatedLimit:  cfg.Content.RelatedSize,
		ListLimit:     cfg.Content.ListSize,
	})
	readerSvc, err := reader.NewService(logger, content, glossary, cfg.Glossary.RenderCacheSize)
	if err != nil {
		return nil, nil, err
	}

	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(content, cfg.Content.Provider, BuildVersion()),
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		Reader:  rest.NewReaderHandler(readerSvc, logger),
	}, limiter.Limit(cfg.Server.LookupRateLimit))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Language,
		dataloader.Middleware(catalogSvc.Loaders()),
	)
	return chain(router), limiter.Stop, nil
}

// LoadGlossary reads the glossary file at path, or returns the built-in
// glossary when path is empty.
func LoadGlossary(path string) (*gloss.Glossary, error) {
	if path == "" {
		return gloss.Builtin(), nil
	}
	fsys, name, err := OSFile(path)
	if err != nil {
		return nil, err
	}
	return gloss.Load(fsys, name)
}
