package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelectColumns = `
	e.id, e.biometric_id, e.full_name, e.employee_number, e.phone_number,
	e.department_id, e.default_shift_id, e.is_active, e.created_at, e.updated_at,
	d.department_name
`

const employeeFromClause = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.BiometricID, &emp.FullName, &emp.EmployeeNumber, &emp.PhoneNumber,
		&emp.DepartmentID, &emp.DefaultShiftID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName,
	)
	return emp, err
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context, departmentID *int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeSelectColumns + employeeFromClause + `
		WHERE e.is_active = TRUE
		  AND ($1::bigint IS NULL OR e.department_id = $1)
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeSelectColumns + employeeFromClause + " WHERE e.id = $1"

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByBiometricID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByBiometricID(ctx context.Context, biometricID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeSelectColumns + employeeFromClause + " WHERE e.biometric_id = $1"

	emp, err := scanEmployee(q.QueryRow(ctx, query, biometricID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by biometric id: %w", err)
	}

	return emp, nil
}

// GetByBiometricIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByBiometricIDs(ctx context.Context, biometricIDs []string) (map[string]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeSelectColumns + employeeFromClause + " WHERE e.biometric_id = ANY($1)"

	rows, err := q.Query(ctx, query, biometricIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by biometric ids: %w", err)
	}
	defer rows.Close()

	employees := make(map[string]employee.Employee)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees[emp.BiometricID] = emp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// ExistsByBiometricID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByBiometricID(ctx context.Context, biometricID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE biometric_id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, biometricID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			biometric_id, full_name, employee_number, phone_number,
			department_id, default_shift_id, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, TRUE
		) RETURNING id, is_active, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.BiometricID,
		emp.FullName,
		emp.EmployeeNumber,
		emp.PhoneNumber,
		emp.DepartmentID,
		emp.DefaultShiftID,
	).Scan(&emp.ID, &emp.IsActive, &emp.CreatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, employee_number = $3, phone_number = $4,
		    department_id = $5, default_shift_id = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FullName,
		emp.EmployeeNumber,
		emp.PhoneNumber,
		emp.DepartmentID,
		emp.DefaultShiftID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	// Idempotent: deactivating an already-inactive employee matches no rows
	// and is not an error, but a missing employee is.
	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}
	}

	return nil
}
