package shift

import "context"

type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (WorkShift, error)

	// GetActive retrieves active shifts ordered by start time.
	GetActive(ctx context.Context) ([]WorkShift, error)
}

type AssignmentRepository interface {
	// GetActiveByEmployee retrieves all active assignments for an employee,
	// with the Shift DTO field populated.
	GetActiveByEmployee(ctx context.Context, employeeID int64) ([]Assignment, error)

	Create(ctx context.Context, assignment Assignment) (Assignment, error)
}
