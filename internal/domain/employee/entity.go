package employee

import "time"

type Employee struct {
	ID             int64
	BiometricID    string
	FullName       string
	EmployeeNumber *string
	PhoneNumber    *string
	DepartmentID   *int64
	DefaultShiftID *int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time

	// DTO
	DepartmentName *string
}
