package store

import (
	"context"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
)

// Storages groups the repositories of the daemon around one connection.
type Storages struct {
	OutboxRepository OutboxRepository
	StateRepository  StateRepository

	db *DB
}

func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		OutboxRepository: NewOutboxRepository(db, log),
		StateRepository:  NewStateRepository(db, log),
		db:               db,
	}
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
