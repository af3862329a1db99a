package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when no outbox row has the requested id.
	ErrItemNotFound = errors.New("sync item was not found")

	// ErrItemExists is returned when an insert-only write meets a row with
	// the same id.
	ErrItemExists = errors.New("sync item already exists")

	// ErrItemsNotSaved is returned when an upsert of outbox rows completes
	// without error but reports zero affected rows.
	ErrItemsNotSaved = errors.New("sync items were not saved")

	// ErrStateNotFound is returned when the key-value table has no entry for
	// the requested key.
	ErrStateNotFound = errors.New("state was not found")

	// ErrRetryable marks a failure the backend classified as transient, such
	// as a busy SQLite database or a serialization failure in PostgreSQL.
	ErrRetryable = errors.New("retryable database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
