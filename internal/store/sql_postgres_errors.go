package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.wrap] how a failed statement should be
// reported to callers.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures such as lost connections or lock
	// contention.
	Retryable
	// Duplicate marks an insert that hit the primary key of an existing row.
	Duplicate
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps the SQLSTATE codes the outbox and state tables can
// produce. Connection loss (class 08), transaction rollback (class 40) and a
// server that is still starting up are retryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return Duplicate
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}
