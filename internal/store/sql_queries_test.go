// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-governor/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildSaveSyncItemsQuery(t *testing.T) {
	items := []models.SyncItem{testItem("a", 10), testItem("b", 20)}

	query, args, err := buildSaveSyncItemsQuery(dollarBuilder, items)
	require.NoError(t, err)

	// one row of 7 values per item
	require.Len(t, args, 14)
	assert.Equal(t, "a", args[0])
	assert.Equal(t, "b", args[7])
	assert.Equal(t, 20, args[13])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into sync_items")
	assert.Contains(t, q, "on conflict (id) do update set")
	assert.Contains(t, query, "$14")
	for _, col := range syncItemColumns {
		assert.Contains(t, q, col)
	}
}

func Test_buildCreateSyncItemQuery(t *testing.T) {
	query, args, err := buildCreateSyncItemQuery(questionBuilder, testItem("a", 10))
	require.NoError(t, err)

	assert.Len(t, args, 7)
	assert.Equal(t,
		"INSERT INTO sync_items (id,type,data,changed_at,is_user_facing,is_critical,priority) VALUES (?,?,?,?,?,?,?)",
		query)
	assert.NotContains(t, strings.ToLower(query), "on conflict")
}

func Test_buildListSyncItemsQuery(t *testing.T) {
	query, args, err := buildListSyncItemsQuery(questionBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, type, data, changed_at, is_user_facing, is_critical, priority FROM sync_items ORDER BY priority DESC, changed_at ASC",
		query)
}

func Test_buildGetSyncItemQuery(t *testing.T) {
	query, args, err := buildGetSyncItemQuery(dollarBuilder, "x")
	require.NoError(t, err)

	assert.Equal(t, []any{"x"}, args)
	assert.True(t, strings.HasSuffix(query, "WHERE id = $1"), query)
}

func Test_buildDeleteSyncItemsQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		ids     []string
		want    string
	}{
		{
			name:    "sqlite",
			builder: questionBuilder,
			ids:     []string{"a", "b", "c"},
			want:    "DELETE FROM sync_items WHERE id IN (?,?,?)",
		},
		{
			name:    "postgres",
			builder: dollarBuilder,
			ids:     []string{"a", "b", "c"},
			want:    "DELETE FROM sync_items WHERE id IN ($1,$2,$3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteSyncItemsQuery(tt.builder, tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Len(t, args, len(tt.ids))
		})
	}
}

func Test_buildStateQueries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildPutStateQuery(questionBuilder, "k", []byte("v"), now)
	require.NoError(t, err)
	assert.Equal(t, []any{"k", "v", now}, args)
	assert.Contains(t, query, "ON CONFLICT (state_key) DO UPDATE SET")

	query, args, err = buildGetStateQuery(questionBuilder, "k")
	require.NoError(t, err)
	assert.Equal(t, "SELECT state_value FROM kv_state WHERE state_key = ?", query)
	assert.Equal(t, []any{"k"}, args)
}

func Test_nullableJSON(t *testing.T) {
	assert.Nil(t, nullableJSON(nil))
	assert.Nil(t, nullableJSON([]byte{}))
	assert.Equal(t, `{"a":1}`, nullableJSON([]byte(`{"a":1}`)))
}
