package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/attendance"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
)

// doubleTapThreshold guards against a terminal logging a double-tap as two
// punches: a check-in/check-out pair closer than this counts as no work
// interval at all.
const doubleTapThreshold = 30 * time.Minute

// halfDayHours is the working-hours cutoff below which a completed day is
// classified HalfDay instead of FullAttendance.
const halfDayHours = 4.0

type reconcilerImpl struct {
	employeeRepo  employee.EmployeeRepository
	shiftResolver shift.Resolver
}

func NewReconciler(employeeRepo employee.EmployeeRepository, shiftResolver shift.Resolver) attendance.Reconciler {
	return &reconcilerImpl{
		employeeRepo:  employeeRepo,
		shiftResolver: shiftResolver,
	}
}

// ReconcileDay implements attendance.Reconciler.
func (s *reconcilerImpl) ReconcileDay(biometricID string, date time.Time, punches []punch.Punch) attendance.DayRecord {
	record := attendance.DayRecord{
		BiometricID: biometricID,
		Date:        date,
		Status:      attendance.StatusAbsent,
	}
	if len(punches) == 0 {
		return record
	}

	sorted := make([]punch.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PunchedAt.Before(sorted[j].PunchedAt)
	})

	checkIn := sorted[0].PunchedAt
	record.CheckIn = &checkIn

	// A lone punch is treated purely as a check-in; check-out requires a
	// second event.
	if len(sorted) > 1 {
		checkOut := sorted[len(sorted)-1].PunchedAt
		record.CheckOut = &checkOut

		if delta := checkOut.Sub(checkIn); delta >= doubleTapThreshold {
			record.WorkingHours = delta.Hours()
		}
	}

	record.Status = classifyDay(record)
	return record
}

// classifyDay applies the status precedence: the no-checkout condition is
// checked before the hour thresholds, so a zeroed double-tap pair lands on
// CheckInOnly, never HalfDay.
func classifyDay(record attendance.DayRecord) attendance.Status {
	switch {
	case record.CheckIn == nil && record.CheckOut != nil:
		return attendance.StatusCheckOutOnly
	case record.CheckIn == nil:
		return attendance.StatusAbsent
	case record.CheckOut == nil || record.WorkingHours == 0:
		return attendance.StatusCheckInOnly
	case record.WorkingHours < halfDayHours:
		return attendance.StatusHalfDay
	default:
		return attendance.StatusFullAttendance
	}
}

// BuildRows implements attendance.Reconciler.
func (s *reconcilerImpl) BuildRows(ctx context.Context, punches []punch.Punch) ([]attendance.Row, error) {
	groups := make(map[attendance.DayKey][]punch.Punch)
	for _, p := range punches {
		key := attendance.DayKeyFor(p.BiometricID, p.PunchedAt)
		groups[key] = append(groups[key], p)
	}

	biometricIDs := make([]string, 0, len(groups))
	seen := make(map[string]bool)
	for key := range groups {
		if !seen[key.BiometricID] {
			seen[key.BiometricID] = true
			biometricIDs = append(biometricIDs, key.BiometricID)
		}
	}

	employees, err := s.employeeRepo.GetByBiometricIDs(ctx, biometricIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve punch employees: %w", err)
	}

	rows := make([]attendance.Row, 0, len(groups))
	for key, group := range groups {
		emp, ok := employees[key.BiometricID]
		if !ok {
			// Punch from an id the directory no longer knows; drop it
			// rather than fail the whole report.
			continue
		}

		date := time.Date(key.Year, key.Month, key.Day, 0, 0, 0, 0, group[0].PunchedAt.Location())
		record := s.ReconcileDay(key.BiometricID, date, group)

		row := attendance.Row{
			BiometricID:  record.BiometricID,
			EmployeeName: emp.FullName,
			Date:         date.Format("2006-01-02"),
			CheckIn:      record.CheckIn,
			CheckOut:     record.CheckOut,
			WorkingHours: record.WorkingHours,
			Status:       record.Status,
		}
		if group[0].BranchName != nil {
			row.BranchName = *group[0].BranchName
		}
		if group[0].DeviceName != nil {
			row.DeviceName = *group[0].DeviceName
		}

		resolved, err := s.shiftResolver.ResolveForDate(ctx, emp.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve shift for employee %d: %w", emp.ID, err)
		}
		if resolved != nil {
			row.ShiftName = resolved.Name
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return rows, nil
}
