package employee

import "context"

// EmployeeRepository is the directory's employee master data. The reporting
// core treats it as read-only; mutations come from the admin surface only.
type EmployeeRepository interface {
	// GetActive retrieves active employees, optionally filtered by
	// department, ordered by full name ascending.
	GetActive(ctx context.Context, departmentID *int64) ([]Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByBiometricID(ctx context.Context, biometricID string) (Employee, error)

	// GetByBiometricIDs retrieves the employees matching any of the given
	// biometric ids, keyed by biometric id. Unknown ids are simply absent.
	GetByBiometricIDs(ctx context.Context, biometricIDs []string) (map[string]Employee, error)

	ExistsByBiometricID(ctx context.Context, biometricID string) (bool, error)

	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deletes an employee. Deactivating an already-inactive
	// employee is a no-op.
	Deactivate(ctx context.Context, id int64) error
}
