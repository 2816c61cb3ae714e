package employee

import (
	"github.com/veritime/attend-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	BiometricID    string  `json:"biometric_id"`
	FullName       string  `json:"full_name"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	DefaultShiftID *int64  `json:"default_shift_id,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{Field: "biometric_id", Message: "is required"})
	} else if len(r.BiometricID) > 12 || !validator.IsNumeric(r.BiometricID) {
		errs = append(errs, validator.ValidationError{Field: "biometric_id", Message: "must be numeric, at most 12 digits"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             int64   `json:"-"`
	FullName       *string `json:"full_name,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	DefaultShiftID *int64  `json:"default_shift_id,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             int64   `json:"id"`
	BiometricID    string  `json:"biometric_id"`
	FullName       string  `json:"full_name"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	DefaultShiftID *int64  `json:"default_shift_id,omitempty"`
	IsActive       bool    `json:"is_active"`
}
