package shift

import (
	"context"
	"time"
)

// Resolver determines the work-shift policy in effect for an employee on a
// calendar date.
type Resolver interface {
	// ResolveForDate returns the covering assignment's shift with the latest
	// EffectiveFrom, falling back to the employee's default shift. A nil
	// shift with nil error means the employee simply has no shift; it is a
	// representable state, not a failure.
	ResolveForDate(ctx context.Context, employeeID int64, date time.Time) (*WorkShift, error)
}

// AssignmentService defines shift assignment administration.
type AssignmentService interface {
	Assign(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]AssignmentResponse, error)
}
