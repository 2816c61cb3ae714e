package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
)

type resolverImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
}

func NewResolver(employeeRepo employee.EmployeeRepository, shiftRepo shift.ShiftRepository, assignmentRepo shift.AssignmentRepository) shift.Resolver {
	return &resolverImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ResolveForDate implements shift.Resolver.
func (s *resolverImpl) ResolveForDate(ctx context.Context, employeeID int64, date time.Time) (*shift.WorkShift, error) {
	assignments, err := s.assignmentRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignments: %w", err)
	}

	// Overlapping windows should not exist, but when they do the latest
	// EffectiveFrom wins.
	var winner *shift.Assignment
	for i := range assignments {
		a := &assignments[i]
		if !a.Covers(date) {
			continue
		}
		if winner == nil || a.EffectiveFrom.After(winner.EffectiveFrom) {
			winner = a
		}
	}
	if winner != nil {
		if winner.Shift != nil {
			return winner.Shift, nil
		}
		ws, err := s.shiftRepo.GetByID(ctx, winner.ShiftID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assigned shift: %w", err)
		}
		return &ws, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee for shift resolution: %w", err)
	}
	if emp.DefaultShiftID == nil {
		// No assignment and no default: the employee has no shift. That is
		// a representable state, not a failure.
		return nil, nil
	}

	ws, err := s.shiftRepo.GetByID(ctx, *emp.DefaultShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get default shift: %w", err)
	}
	return &ws, nil
}

type assignmentServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
}

func NewAssignmentService(employeeRepo employee.EmployeeRepository, shiftRepo shift.ShiftRepository, assignmentRepo shift.AssignmentRepository) shift.AssignmentService {
	return &assignmentServiceImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Assign implements shift.AssignmentService.
func (s *assignmentServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	ws, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	if !ws.IsActive {
		return shift.AssignmentResponse{}, shift.ErrAssignmentShiftInactive
	}

	created, err := s.assignmentRepo.Create(ctx, shift.Assignment{
		EmployeeID:    req.EmployeeID,
		ShiftID:       req.ShiftID,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		Notes:         req.Notes,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	created.Shift = &ws

	return mapAssignmentToResponse(created), nil
}

// ListForEmployee implements shift.AssignmentService.
func (s *assignmentServiceImpl) ListForEmployee(ctx context.Context, employeeID int64) ([]shift.AssignmentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return responses, nil
}

func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	resp := shift.AssignmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		ShiftID:       a.ShiftID,
		EffectiveFrom: a.EffectiveFrom.Format("2006-01-02"),
		Notes:         a.Notes,
	}
	if a.Shift != nil {
		resp.ShiftName = &a.Shift.Name
	}
	if a.EffectiveTo != nil {
		to := a.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}
