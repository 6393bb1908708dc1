// Package dataloader provides per-request DataLoaders that batch author and
// category lookups for poem listings into single provider calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Provider interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type authorRepo interface {
	GetAuthorsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error)
}

type categoryRepo interface {
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

// Repos holds the lookups required by the DataLoaders. Every content
// provider satisfies both.
type Repos struct {
	Authors    authorRepo
	Categories categoryRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. A nil result means the ID
// does not exist.
type Loaders struct {
	AuthorByID   *dataloader.Loader[uuid.UUID, *domain.Author]
	CategoryByID *dataloader.Loader[uuid.UUID, *domain.Category]
}

// NewLoaders creates a new set of DataLoaders backed by repos.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AuthorByID:   newLoader(newAuthorsBatchFn(repos.Authors)),
		CategoryByID: newLoader(newCategoriesBatchFn(repos.Categories)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := Lookup(ctx)
	if !ok {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Lookup returns the Loaders stored in ctx, if any.
func Lookup(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
