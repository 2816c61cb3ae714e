package employee

import "context"

// EmployeeService defines directory administration for employees.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	ListActive(ctx context.Context, departmentID *int64) ([]EmployeeResponse, error)
	Deactivate(ctx context.Context, id int64) error
}
