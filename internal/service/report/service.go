package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/report"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
	"github.com/veritime/attend-backend-go/internal/pkg/metrics"
)

// lateCutoff is the fixed time-of-day a daily-summary check-in is judged
// against. Deliberately not derived from the resolved shift's startTime +
// lateMinutes; the shift-aware path lives in the resolver.
const lateCutoff = 8 * time.Hour

const (
	statusOnTime = "On Time"
	statusLate   = "Late"

	absentReasonUnexcused = "Unexcused absence"
)

type serviceImpl struct {
	punchRepo        punch.PunchRepository
	employeeRepo     employee.EmployeeRepository
	earlyLeavePolicy report.EarlyLeavePolicy
}

func NewReportService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, earlyLeavePolicy report.EarlyLeavePolicy) report.ReportService {
	return &serviceImpl{
		punchRepo:        punchRepo,
		employeeRepo:     employeeRepo,
		earlyLeavePolicy: earlyLeavePolicy,
	}
}

// BuildDailySummary implements report.ReportService.
func (s *serviceImpl) BuildDailySummary(ctx context.Context, filter report.DailySummaryFilter) (report.DailySummary, error) {
	employees, err := s.employeeRepo.GetActive(ctx, filter.DepartmentID)
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to fetch directory: %w", err)
	}

	dayStart := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, filter.Date.Location())
	punches, err := s.punchRepo.GetByDateRange(ctx, dayStart, dayStart.AddDate(0, 0, 1), punch.RangeFilter{
		BranchID: filter.BranchID,
	})
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to fetch punches: %w", err)
	}

	// Punches from ids the directory filter excludes are silently dropped:
	// directory membership is authoritative over punch presence.
	punchesByID := make(map[string][]punch.Punch)
	for _, p := range punches {
		punchesByID[p.BiometricID] = append(punchesByID[p.BiometricID], p)
	}

	summary := report.DailySummary{
		ReportDate:     dayStart,
		TotalEmployees: len(employees),
	}

	for _, emp := range employees {
		dayPunches, present := punchesByID[emp.BiometricID]
		if !present {
			summary.AbsentEmployees = append(summary.AbsentEmployees, report.AbsentEmployee{
				EmployeeID:     emp.ID,
				EmployeeNumber: derefString(emp.EmployeeNumber),
				EmployeeName:   emp.FullName,
				BiometricID:    emp.BiometricID,
				DepartmentName: derefString(emp.DepartmentName),
				PhoneNumber:    emp.PhoneNumber,
				AbsentReason:   absentReasonUnexcused,
			})
			continue
		}

		entry := report.PresentEmployee{
			EmployeeID:     emp.ID,
			EmployeeNumber: derefString(emp.EmployeeNumber),
			EmployeeName:   emp.FullName,
			BiometricID:    emp.BiometricID,
			DepartmentName: derefString(emp.DepartmentName),
			Status:         statusOnTime,
		}

		checkIn, checkOut := firstAndLast(dayPunches)
		entry.CheckInTime = &checkIn
		if checkOut != nil {
			entry.CheckOutTime = checkOut
			if checkOut.After(checkIn) {
				d := checkOut.Sub(checkIn)
				entry.WorkDuration = &d
			}
		}

		if clockOf(checkIn) > lateCutoff {
			entry.IsLate = true
			entry.Status = statusLate
		}

		if checkOut != nil {
			early, err := s.earlyLeavePolicy.Evaluate(*checkOut, nil)
			if err == nil {
				entry.IsEarlyLeave = early
				summary.EarlyLeaveEvaluated = true
			}
		}

		summary.PresentEmployees = append(summary.PresentEmployees, entry)
	}

	sort.Slice(summary.PresentEmployees, func(i, j int) bool {
		return summary.PresentEmployees[i].EmployeeName < summary.PresentEmployees[j].EmployeeName
	})
	sort.Slice(summary.AbsentEmployees, func(i, j int) bool {
		return summary.AbsentEmployees[i].EmployeeName < summary.AbsentEmployees[j].EmployeeName
	})

	summary.PresentCount = len(summary.PresentEmployees)
	summary.AbsentCount = len(summary.AbsentEmployees)
	for _, e := range summary.PresentEmployees {
		if e.IsLate {
			summary.LateCount++
		}
		if e.IsEarlyLeave {
			summary.EarlyLeaveCount++
		}
	}

	metrics.IncReportGenerated("daily_summary")
	return summary, nil
}

// BuildRangeReport implements report.ReportService.
func (s *serviceImpl) BuildRangeReport(ctx context.Context, filter report.RangeFilter) (report.RangeReport, error) {
	if err := filter.Validate(); err != nil {
		return report.RangeReport{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx, nil)
	if err != nil {
		return report.RangeReport{}, fmt.Errorf("failed to fetch directory: %w", err)
	}
	if filter.EmployeeID != nil {
		var filtered []employee.Employee
		for _, emp := range employees {
			if emp.ID == *filter.EmployeeID {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	fromStart := time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, filter.FromDate.Location())
	toEnd := time.Date(filter.ToDate.Year(), filter.ToDate.Month(), filter.ToDate.Day(), 0, 0, 0, 0, filter.ToDate.Location()).AddDate(0, 0, 1)

	punches, err := s.punchRepo.GetByDateRange(ctx, fromStart, toEnd, punch.RangeFilter{
		BranchID: filter.BranchID,
		DeviceID: filter.DeviceID,
	})
	if err != nil {
		return report.RangeReport{}, fmt.Errorf("failed to fetch punches: %w", err)
	}

	punchesByID := make(map[string][]punch.Punch)
	for _, p := range punches {
		punchesByID[p.BiometricID] = append(punchesByID[p.BiometricID], p)
	}

	out := report.RangeReport{
		FromDate:       fromStart,
		ToDate:         filter.ToDate,
		TotalEmployees: len(employees),
	}

	for _, emp := range employees {
		item := report.RangeItem{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.FullName,
			BiometricID:    emp.BiometricID,
			DepartmentName: derefString(emp.DepartmentName),
			Status:         report.RangeStatusAbsent,
		}

		window := punchesByID[emp.BiometricID]
		if len(window) > 0 {
			firstIn, lastOut := resolveRangeEnds(window)
			item.FirstCheckIn = firstIn
			item.LastCheckOut = lastOut
			if firstIn != nil && lastOut != nil && lastOut.After(*firstIn) {
				d := lastOut.Sub(*firstIn)
				item.TotalWorkHours = &d
			}
			switch {
			case firstIn != nil && lastOut != nil:
				item.Status = report.RangeStatusPresent
			default:
				item.Status = report.RangeStatusCheckedInOnly
			}
		}

		out.Items = append(out.Items, item)
	}

	sort.Slice(out.Items, func(i, j int) bool {
		return out.Items[i].EmployeeName < out.Items[j].EmployeeName
	})

	for _, item := range out.Items {
		if item.Status == report.RangeStatusAbsent {
			out.AbsentCount++
		} else {
			out.PresentCount++
		}
	}

	metrics.IncReportGenerated("range")
	return out, nil
}

// resolveRangeEnds prefers explicitly typed punches over positional
// inference. Each end falls back independently; the positional checkout
// additionally requires a second distinct punch, mirroring the two-punch
// minimum of the daily path.
func resolveRangeEnds(window []punch.Punch) (*time.Time, *time.Time) {
	var firstIn, lastOut *time.Time
	var earliest, latest *time.Time

	for i := range window {
		p := window[i]
		ts := p.PunchedAt
		if earliest == nil || ts.Before(*earliest) {
			earliest = &ts
		}
		if latest == nil || ts.After(*latest) {
			latest = &ts
		}
		if p.Type == nil {
			continue
		}
		switch *p.Type {
		case punch.TypeCheckIn:
			if firstIn == nil || ts.Before(*firstIn) {
				firstIn = &ts
			}
		case punch.TypeCheckOut:
			if lastOut == nil || ts.After(*lastOut) {
				lastOut = &ts
			}
		}
	}

	if firstIn == nil {
		firstIn = earliest
	}
	if lastOut == nil && latest != nil && !latest.Equal(*firstIn) {
		lastOut = latest
	}

	return firstIn, lastOut
}

// firstAndLast applies the daily pairing rule: earliest punch is the
// check-in, latest is the check-out only when a second punch exists.
func firstAndLast(punches []punch.Punch) (time.Time, *time.Time) {
	first := punches[0].PunchedAt
	last := punches[0].PunchedAt
	for _, p := range punches[1:] {
		if p.PunchedAt.Before(first) {
			first = p.PunchedAt
		}
		if p.PunchedAt.After(last) {
			last = p.PunchedAt
		}
	}
	if len(punches) > 1 {
		return first, &last
	}
	return first, nil
}

func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type earlyLeavePolicyStub struct{}

// NewEarlyLeavePolicy returns the current early-leave policy. Evaluation is
// not implemented yet; the summary reports the placeholder honestly via
// EarlyLeaveEvaluated instead of a silent false.
func NewEarlyLeavePolicy() report.EarlyLeavePolicy {
	return earlyLeavePolicyStub{}
}

// Evaluate implements report.EarlyLeavePolicy.
func (earlyLeavePolicyStub) Evaluate(checkOut time.Time, workShift *shift.WorkShift) (bool, error) {
	return false, report.ErrEarlyLeaveNotEvaluated
}
