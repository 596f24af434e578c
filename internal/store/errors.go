package store

import "errors"

// ErrSessionNotFound is returned by LoadSession when nothing is stored.
var ErrSessionNotFound = errors.New("local session not found")

// Low-level database operation errors. Repository methods wrap them so that
// callers can tell query construction failures from execution failures.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
