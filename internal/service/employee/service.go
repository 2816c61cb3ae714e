package employee

import (
	"context"
	"fmt"

	"github.com/veritime/attend-backend-go/internal/domain/employee"
)

// directoryInvalidator drops cached directory lookups after a mutation.
type directoryInvalidator interface {
	InvalidateEmployees(ctx context.Context)
}

type serviceImpl struct {
	employeeRepo employee.EmployeeRepository
	invalidator  directoryInvalidator
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, invalidator directoryInvalidator) employee.EmployeeService {
	return &serviceImpl{
		employeeRepo: employeeRepo,
		invalidator:  invalidator,
	}
}

// Create implements employee.EmployeeService.
func (s *serviceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByBiometricID(ctx, req.BiometricID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check biometric id: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrBiometricIDExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		BiometricID:    req.BiometricID,
		FullName:       req.FullName,
		EmployeeNumber: req.EmployeeNumber,
		PhoneNumber:    req.PhoneNumber,
		DepartmentID:   req.DepartmentID,
		DefaultShiftID: req.DefaultShiftID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidator.InvalidateEmployees(ctx)
	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *serviceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.EmployeeNumber != nil {
		emp.EmployeeNumber = req.EmployeeNumber
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.DefaultShiftID != nil {
		emp.DefaultShiftID = req.DefaultShiftID
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidator.InvalidateEmployees(ctx)

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Get implements employee.EmployeeService.
func (s *serviceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// ListActive implements employee.EmployeeService.
func (s *serviceImpl) ListActive(ctx context.Context, departmentID *int64) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActive(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Deactivate implements employee.EmployeeService.
func (s *serviceImpl) Deactivate(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidator.InvalidateEmployees(ctx)
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		BiometricID:    emp.BiometricID,
		FullName:       emp.FullName,
		EmployeeNumber: emp.EmployeeNumber,
		PhoneNumber:    emp.PhoneNumber,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		DefaultShiftID: emp.DefaultShiftID,
		IsActive:       emp.IsActive,
	}
}
