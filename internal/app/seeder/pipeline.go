package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/adapter/static"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// allPhases defines the canonical execution order. Poems reference authors
// and categories, so those go first.
var allPhases = []string{"authors", "categories", "poems"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds a fixture phase by phase. Each author and category phase
// runs in one transaction; poems are committed in batches.
type Pipeline struct {
	log     *slog.Logger
	repo    ContentRepo
	tx      TxManager
	cfg     Config
	results map[string]PhaseResult

	// fixture ID -> stored ID, for rows that already existed under a
	// different ID
	authorIDs   map[uuid.UUID]uuid.UUID
	categoryIDs map[uuid.UUID]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo ContentRepo, tx TxManager, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Pipeline{
		log:         log,
		repo:        repo,
		tx:          tx,
		cfg:         cfg,
		results:     make(map[string]PhaseResult),
		authorIDs:   make(map[uuid.UUID]uuid.UUID),
		categoryIDs: make(map[uuid.UUID]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run seeds fx. A failed phase stops the run: later phases depend on it.
func (p *Pipeline) Run(ctx context.Context, fx *static.Fixture) error {
	for _, phase := range allPhases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "authors":
			result = p.runAuthors(ctx, fx.Authors)
		case "categories":
			result = p.runCategories(ctx, fx.Categories)
		case "poems":
			result = p.runPoems(ctx, fx.Poems)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

func (p *Pipeline) runAuthors(ctx context.Context, authors []domain.Author) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(authors)}
	}

	var result PhaseResult
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		result = PhaseResult{}
		for i := range authors {
			id, created, err := p.repo.EnsureAuthor(ctx, &authors[i])
			if err != nil {
				return fmt.Errorf("author %s: %w", authors[i].Slug, err)
			}
			p.authorIDs[authors[i].ID] = id
			count(&result, created)
		}
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	return result
}

func (p *Pipeline) runCategories(ctx context.Context, categories []domain.Category) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(categories)}
	}

	var result PhaseResult
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		result = PhaseResult{}
		for i := range categories {
			id, created, err := p.repo.EnsureCategory(ctx, &categories[i])
			if err != nil {
				return fmt.Errorf("category %s: %w", categories[i].Slug, err)
			}
			p.categoryIDs[categories[i].ID] = id
			count(&result, created)
		}
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	return result
}

func (p *Pipeline) runPoems(ctx context.Context, poems []domain.Poem) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(poems)}
	}

	var result PhaseResult
	_, err := batchProcess(poems, p.cfg.BatchSize, func(batch []domain.Poem) (int, error) {
		var batchResult PhaseResult
		err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
			batchResult = PhaseResult{}
			for _, poem := range batch {
				poem.AuthorID = p.remap(p.authorIDs, poem.AuthorID)
				if poem.CategoryID != nil {
					id := p.remap(p.categoryIDs, *poem.CategoryID)
					poem.CategoryID = &id
				}
				_, created, err := p.repo.EnsurePoem(ctx, &poem)
				if err != nil {
					return fmt.Errorf("poem %s: %w", poem.Slug, err)
				}
				count(&batchResult, created)
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
		result.Inserted += batchResult.Inserted
		result.Skipped += batchResult.Skipped
		return batchResult.Inserted, nil
	})
	if err != nil {
		result.Err = err
	}
	return result
}

func (p *Pipeline) remap(ids map[uuid.UUID]uuid.UUID, id uuid.UUID) uuid.UUID {
	if stored, ok := ids[id]; ok {
		return stored
	}
	return id
}

func count(r *PhaseResult, created bool) {
	if created {
		r.Inserted++
	} else {
		r.Skipped++
	}
}

// batchProcess splits items into chunks of batchSize and calls fn for each.
// Returns the total count reported by fn. Stops on the first error.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = len(items)
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
