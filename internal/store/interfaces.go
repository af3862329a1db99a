package store

import (
	"context"

	"github.com/MKhiriev/go-sync-governor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OutboxRepository persists sync items that have not reached the server yet.
type OutboxRepository interface {
	// Create inserts a single new item. A row with the same id is left
	// untouched and [ErrItemExists] is returned.
	Create(ctx context.Context, item models.SyncItem) error
	// Save inserts items or overwrites rows with the same id.
	Save(ctx context.Context, items ...models.SyncItem) error
	// Get returns a single item or [ErrItemNotFound].
	Get(ctx context.Context, id string) (models.SyncItem, error)
	// List returns every pending item ordered by priority, highest first.
	List(ctx context.Context) ([]models.SyncItem, error)
	// Delete removes the given ids and reports how many rows were removed.
	Delete(ctx context.Context, ids ...string) (int64, error)
}

// StateRepository is a small key-value table for runtime snapshots.
type StateRepository interface {
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the stored value or [ErrStateNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
