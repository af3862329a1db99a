package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/models"
)

// outboxRepository is the SQL-backed implementation of [OutboxRepository].
// It keeps one row per pending sync item in the "sync_items" table.
type outboxRepository struct {
	*DB
	logger *logger.Logger
}

func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	return &outboxRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *outboxRepository) Save(ctx context.Context, items ...models.SyncItem) error {
	if len(items) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSaveSyncItemsQuery(o.builder(), items)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Save").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.Save").
			Int("items", len(items)).
			Msg("failed to save sync items")
		return o.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		log.Error().
			Str("func", "outboxRepository.Save").
			Int("items", len(items)).
			Msg("no rows were affected")
		return ErrItemsNotSaved
	}

	return nil
}

func (o *outboxRepository) Create(ctx context.Context, item models.SyncItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSyncItemQuery(o.builder(), item)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Create").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = o.DB.ExecContext(ctx, query, args...); err != nil {
		err = o.wrap(ErrExecutingStatement, err)
		if errors.Is(err, ErrItemExists) {
			log.Debug().Str("func", "outboxRepository.Create").Str("id", item.ID).Msg("sync item already exists")
			return err
		}
		log.Err(err).Str("func", "outboxRepository.Create").Str("id", item.ID).Msg("failed to create sync item")
		return err
	}

	return nil
}

func (o *outboxRepository) Get(ctx context.Context, id string) (models.SyncItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncItemQuery(o.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Get").Msg("failed to build query")
		return models.SyncItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanSyncItem(o.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Get").Str("id", id).Msg("failed to get sync item")
		return models.SyncItem{}, o.wrap(ErrScanningRow, err)
	}

	return item, nil
}

func (o *outboxRepository) List(ctx context.Context) ([]models.SyncItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSyncItemsQuery(o.builder())
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := o.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.List").Msg("failed to list sync items")
		return nil, o.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SyncItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanSyncItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "outboxRepository.List").Msg("failed to scan sync item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "outboxRepository.List").Msg("rows iteration failed")
		return nil, o.wrap(ErrScanningRows, err)
	}

	return items, nil
}

func (o *outboxRepository) Delete(ctx context.Context, ids ...string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSyncItemsQuery(o.builder(), ids)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Delete").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.Delete").
			Strs("ids", ids).
			Msg("failed to delete sync items")
		return 0, o.wrap(ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncItem(row rowScanner) (models.SyncItem, error) {
	var (
		item models.SyncItem
		data []byte
	)

	err := row.Scan(
		&item.ID,
		&item.Type,
		&data,
		&item.Timestamp,
		&item.IsUserFacing,
		&item.IsCritical,
		&item.Priority,
	)
	if err != nil {
		return models.SyncItem{}, err
	}

	if len(data) > 0 {
		item.Data = data
	}

	return item, nil
}
