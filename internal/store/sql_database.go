package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/migrations"
)

// Dialect names the SQL backend. The values double as database/sql driver
// names and goose dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// DialectFromDSN picks the backend from the DSN scheme. Anything that is not
// a postgres URL is treated as a SQLite path.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN and applies migrations.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect reports the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// wrap joins err with sentinel and with ErrRetryable or ErrItemExists when
// the backend classifies the failure.
func (db *DB) wrap(sentinel, err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	switch db.errorClassificator.Classify(err) {
	case Retryable:
		return fmt.Errorf("%w: %w: %w", sentinel, ErrRetryable, err)
	case Duplicate:
		return fmt.Errorf("%w: %w: %w", sentinel, ErrItemExists, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
