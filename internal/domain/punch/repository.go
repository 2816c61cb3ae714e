package punch

import (
	"context"
	"time"
)

// PunchRepository is the append-only punch store. The reporting path only
// reads; MarkSynced/MarkProcessed are the sole permitted mutations and must be
// idempotent.
type PunchRepository interface {
	// GetByDateRange retrieves punches with from <= punched_at < to.
	GetByDateRange(ctx context.Context, from, to time.Time, filter RangeFilter) ([]Punch, error)

	// GetByEmployeeAndDate retrieves one employee's punches for a single
	// calendar day, ordered by punch time ascending.
	GetByEmployeeAndDate(ctx context.Context, biometricID string, date time.Time) ([]Punch, error)

	// List retrieves punches for the admin log view with pagination.
	List(ctx context.Context, filter ListFilter) ([]Punch, int64, error)

	// Exists reports whether an event with the same identity triple is
	// already stored. Used by device ingestion to deduplicate.
	Exists(ctx context.Context, biometricID string, punchedAt time.Time, deviceID int64) (bool, error)

	MarkSynced(ctx context.Context, ids []int64) error
	MarkProcessed(ctx context.Context, ids []int64) error

	// LastSeenByDevice returns the newest punch timestamp per device.
	LastSeenByDevice(ctx context.Context) (map[int64]time.Time, error)
}
