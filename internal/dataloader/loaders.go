package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

func newAuthorsBatchFn(repo authorRepo) dataloader.BatchFunc[uuid.UUID, *domain.Author] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Author] {
		authors, err := repo.GetAuthorsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Author](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Author, len(authors))
		for i := range authors {
			byID[authors[i].ID] = &authors[i]
		}

		return mapResults(keys, byID, nilValue[domain.Author])
	}
}

func newCategoriesBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Category] {
		categories, err := repo.GetCategoriesByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Category](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Category, len(categories))
		for i := range categories {
			byID[categories[i].ID] = &categories[i]
		}

		return mapResults(keys, byID, nilValue[domain.Category])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() *T {
	return nil
}
