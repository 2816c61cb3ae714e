package report

import (
	"context"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/shift"
)

// ReportService builds attendance reports over the punch store and directory.
type ReportService interface {
	// BuildDailySummary diffs the active directory against the day's
	// punchers and classifies the present cohort.
	BuildDailySummary(ctx context.Context, filter DailySummaryFilter) (DailySummary, error)

	// BuildRangeReport aggregates per employee over the entire window,
	// preferring typed CheckIn/CheckOut punches over positional inference.
	BuildRangeReport(ctx context.Context, filter RangeFilter) (RangeReport, error)
}

// EarlyLeavePolicy decides whether a checkout counts as leaving early
// against the shift in effect.
type EarlyLeavePolicy interface {
	Evaluate(checkOut time.Time, workShift *shift.WorkShift) (bool, error)
}
