// Package seeder loads a content fixture into a database idempotently:
// authors, categories and poems are inserted by slug and existing rows are
// left untouched.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// ContentRepo is the write side of a content store. Each Ensure method
// inserts the row unless its slug exists and returns the stored ID plus
// whether a row was created. Implemented by the PostgreSQL content repo
// and the SQLite repo.
type ContentRepo interface {
	EnsureAuthor(ctx context.Context, a *domain.Author) (uuid.UUID, bool, error)
	EnsureCategory(ctx context.Context, c *domain.Category) (uuid.UUID, bool, error)
	EnsurePoem(ctx context.Context, p *domain.Poem) (uuid.UUID, bool, error)
}

// TxManager runs fn in a transaction carried by ctx.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
