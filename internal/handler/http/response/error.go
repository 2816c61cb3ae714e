package response

import (
	"errors"
	"net/http"

	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/master/branch"
	"github.com/veritime/attend-backend-go/internal/domain/master/department"
	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/report"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
	"github.com/veritime/attend-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrBiometricIDExists):
		Conflict(w, "Biometric ID already registered")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrNoPunchIDs):
		BadRequest(w, "At least one punch id is required", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidAssignmentWindow):
		BadRequest(w, "Assignment window end precedes its start", nil)
	case errors.Is(err, shift.ErrAssignmentShiftInactive):
		Conflict(w, "Cannot assign an inactive shift")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "to_date must not be before from_date", nil)

	// Master data errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
