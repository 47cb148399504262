package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no state snapshot exists for the
	// requested device.
	ErrSnapshotNotFound = errors.New("state snapshot was not found")

	// ErrSnapshotNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrSnapshotNotSaved = errors.New("state snapshot was not saved")

	// ErrInvalidFileName is returned when an upload name would escape the
	// device directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")
)
