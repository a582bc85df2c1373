// Package store persists query-run results to an append-only tabular log.
// Two backends implement the same interface: the Google Sheets worksheet the
// original deployment used, and Postgres. Rows are appended once and never
// mutated; a crashed run that restarts may re-append rows for queries it had
// already processed (at-least-once semantics), with RunID available as a
// dedup key for consumers that need one.
package store

import (
	"context"
	"time"

	"github.com/jonathan/geo-radar/internal/types"
)

// Store is the append/bulk-read row log for query-run results.
type Store interface {
	// AppendResult appends one row. Failures are reported, not retried;
	// the collection job logs and moves on to the next query.
	AppendResult(ctx context.Context, result types.EngineResult) error
	// ListResults returns the rows for one organization within the
	// inclusive date range, oldest first. Zero bounds are unbounded.
	ListResults(ctx context.Context, organization string, from, to time.Time) ([]types.EngineResult, error)
	// Close releases the backend connection.
	Close() error
}

func inRange(ts time.Time, from, to time.Time) bool {
	if !from.IsZero() && ts.Before(from) {
		return false
	}
	if !to.IsZero() && ts.After(to) {
		return false
	}
	return true
}
