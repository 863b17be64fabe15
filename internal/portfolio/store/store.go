// Package store holds the remote document store clients. The whole Document
// travels on every call: Load is a full GET, Save a full overwrite. There is
// no partial update, no cache and no retry — a failed round trip surfaces
// immediately as apperror.ErrStoreUnavailable.
package store

import (
	"context"

	"github.com/devfolio/devfolio-api/internal/portfolio"
)

// Store is the persistence boundary the coordinator depends on.
type Store interface {
	Load(ctx context.Context) (*portfolio.Document, error)
	Save(ctx context.Context, doc *portfolio.Document) error
}
