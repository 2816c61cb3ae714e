package department

import "context"

type DepartmentRepository interface {
	// GetActive retrieves active departments ordered by name.
	GetActive(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
}
