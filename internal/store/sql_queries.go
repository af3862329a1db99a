package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-governor/models"
)

const (
	syncItemsTable = "sync_items"
	kvStateTable   = "kv_state"

	upsertSyncItemsSuffix = `ON CONFLICT (id) DO UPDATE SET
		type = excluded.type,
		data = excluded.data,
		changed_at = excluded.changed_at,
		is_user_facing = excluded.is_user_facing,
		is_critical = excluded.is_critical,
		priority = excluded.priority`

	upsertStateSuffix = `ON CONFLICT (state_key) DO UPDATE SET
		state_value = excluded.state_value,
		updated_at = excluded.updated_at`
)

var syncItemColumns = []string{
	"id", "type", "data", "changed_at", "is_user_facing", "is_critical", "priority",
}

func insertSyncItems(b sq.StatementBuilderType, items []models.SyncItem) sq.InsertBuilder {
	query := b.Insert(syncItemsTable).Columns(syncItemColumns...)
	for _, item := range items {
		query = query.Values(
			item.ID,
			item.Type,
			nullableJSON(item.Data),
			item.Timestamp.UTC(),
			item.IsUserFacing,
			item.IsCritical,
			item.Priority,
		)
	}
	return query
}

func buildSaveSyncItemsQuery(b sq.StatementBuilderType, items []models.SyncItem) (string, []any, error) {
	return insertSyncItems(b, items).Suffix(upsertSyncItemsSuffix).ToSql()
}

// buildCreateSyncItemQuery is a plain INSERT; an existing id fails on the
// primary key instead of being overwritten.
func buildCreateSyncItemQuery(b sq.StatementBuilderType, item models.SyncItem) (string, []any, error) {
	return insertSyncItems(b, []models.SyncItem{item}).ToSql()
}

func buildGetSyncItemQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(syncItemColumns...).
		From(syncItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListSyncItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(syncItemColumns...).
		From(syncItemsTable).
		OrderBy("priority DESC", "changed_at ASC").
		ToSql()
}

func buildDeleteSyncItemsQuery(b sq.StatementBuilderType, ids []string) (string, []any, error) {
	return b.Delete(syncItemsTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildPutStateQuery(b sq.StatementBuilderType, key string, value []byte, now time.Time) (string, []any, error) {
	return b.Insert(kvStateTable).
		Columns("state_key", "state_value", "updated_at").
		Values(key, string(value), now.UTC()).
		Suffix(upsertStateSuffix).
		ToSql()
}

func buildGetStateQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("state_value").
		From(kvStateTable).
		Where(sq.Eq{"state_key": key}).
		ToSql()
}

// nullableJSON stores an empty payload as NULL and anything else as text so
// the same column type works on both backends.
func nullableJSON(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}
