package punch

import "context"

// PunchService exposes the punch log to the admin surface.
type PunchService interface {
	// List retrieves punch events with filters and pagination.
	List(ctx context.Context, filter ListFilter) (ListPunchesResponse, error)

	// MarkSynced flags punches as exported to the payroll system. Re-marking
	// an already-synced punch is a no-op.
	MarkSynced(ctx context.Context, req MarkRequest) error

	// MarkProcessed flags punches as consumed by reconciliation bookkeeping.
	MarkProcessed(ctx context.Context, req MarkRequest) error
}
