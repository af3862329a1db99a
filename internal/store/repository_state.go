package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
)

// stateRepository stores opaque snapshots in the "kv_state" table.
type stateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *stateRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutStateQuery(s.builder(), key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "stateRepository.Put").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "stateRepository.Put").Str("key", key).Msg("failed to put state")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *stateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStateQuery(s.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "stateRepository.Get").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "stateRepository.Get").Str("key", key).Msg("failed to get state")
		return nil, s.wrap(ErrScanningRow, err)
	}

	return value, nil
}
