package attendance

import (
	"context"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/punch"
)

// Reconciler turns raw punch events into attendance records.
type Reconciler interface {
	// ReconcileDay pairs one employee's punches for a single calendar day
	// into check-in/check-out and classifies the day. Pure: same punches,
	// same record.
	ReconcileDay(biometricID string, date time.Time, punches []punch.Punch) DayRecord

	// BuildRows groups a raw punch window by (employee, day), reconciles
	// each group and joins directory names. Punches whose employee is
	// unknown to the directory are skipped.
	BuildRows(ctx context.Context, punches []punch.Punch) ([]Row, error)
}
