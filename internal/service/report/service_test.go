package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/report"
)

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch
}

func (f *fakePunchRepo) GetByDateRange(ctx context.Context, from, to time.Time, filter punch.RangeFilter) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.PunchedAt.Before(from) || !p.PunchedAt.Before(to) {
			continue
		}
		if filter.BranchID != nil && p.BranchID != *filter.BranchID {
			continue
		}
		if filter.DeviceID != nil && p.DeviceID != *filter.DeviceID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context, departmentID *int64) ([]employee.Employee, error) {
	if departmentID == nil {
		return f.active, nil
	}
	var out []employee.Employee
	for _, emp := range f.active {
		if emp.DepartmentID != nil && *emp.DepartmentID == *departmentID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func deptEmployee(id int64, biometricID, name string, departmentID int64) employee.Employee {
	return employee.Employee{
		ID:           id,
		BiometricID:  biometricID,
		FullName:     name,
		DepartmentID: &departmentID,
		IsActive:     true,
	}
}

func punchFor(biometricID string, t time.Time) punch.Punch {
	return punch.Punch{BiometricID: biometricID, PunchedAt: t}
}

func typedPunch(biometricID string, t time.Time, pt punch.Type) punch.Punch {
	return punch.Punch{BiometricID: biometricID, PunchedAt: t, Type: &pt}
}

func newSummaryService(employees []employee.Employee, punches []punch.Punch) report.ReportService {
	return NewReportService(
		&fakePunchRepo{punches: punches},
		&fakeEmployeeRepo{active: employees},
		NewEarlyLeavePolicy(),
	)
}

var reportDay = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestDailySummaryPartitionsDirectory(t *testing.T) {
	deptID := int64(10)
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Ana", deptID),
		deptEmployee(2, "1002", "Bruno", deptID),
		deptEmployee(3, "1003", "Carla", deptID),
		deptEmployee(4, "1004", "Diego", deptID),
		deptEmployee(5, "1005", "Elisa", deptID),
	}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(8*time.Hour)),
		punchFor("1002", reportDay.Add(9*time.Hour)),
		punchFor("1003", reportDay.Add(7*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	summary, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{
		Date:         reportDay,
		DepartmentID: &deptID,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalEmployees)
	assert.Equal(t, 3, summary.PresentCount)
	assert.Equal(t, 2, summary.AbsentCount)

	// Every active employee lands in exactly one cohort.
	seen := make(map[string]int)
	for _, e := range summary.PresentEmployees {
		seen[e.BiometricID]++
	}
	for _, e := range summary.AbsentEmployees {
		seen[e.BiometricID]++
	}
	require.Len(t, seen, 5)
	for id, n := range seen {
		assert.Equal(t, 1, n, "employee %s must appear exactly once", id)
	}

	for _, e := range summary.AbsentEmployees {
		assert.Equal(t, "Unexcused absence", e.AbsentReason)
	}
}

func TestDailySummaryLateCutoff(t *testing.T) {
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Ana", 10),
		deptEmployee(2, "1002", "Bruno", 10),
		deptEmployee(3, "1003", "Carla", 10),
	}
	punches := []punch.Punch{
		// Exactly 08:00 is on time; the cutoff is strict.
		punchFor("1001", reportDay.Add(8*time.Hour)),
		punchFor("1002", reportDay.Add(8*time.Hour+time.Minute)),
		punchFor("1003", reportDay.Add(7*time.Hour+59*time.Minute)),
	}
	svc := newSummaryService(employees, punches)

	summary, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{Date: reportDay})
	require.NoError(t, err)

	require.Len(t, summary.PresentEmployees, 3)
	byName := make(map[string]report.PresentEmployee)
	for _, e := range summary.PresentEmployees {
		byName[e.EmployeeName] = e
	}

	assert.False(t, byName["Ana"].IsLate)
	assert.Equal(t, "On Time", byName["Ana"].Status)
	assert.True(t, byName["Bruno"].IsLate)
	assert.Equal(t, "Late", byName["Bruno"].Status)
	assert.False(t, byName["Carla"].IsLate)
	assert.Equal(t, 1, summary.LateCount)
}

func TestDailySummaryEarlyLeaveNeverEvaluated(t *testing.T) {
	employees := []employee.Employee{deptEmployee(1, "1001", "Ana", 10)}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(9*time.Hour)),
		punchFor("1001", reportDay.Add(16*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	summary, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{Date: reportDay})
	require.NoError(t, err)

	assert.False(t, summary.EarlyLeaveEvaluated)
	assert.Zero(t, summary.EarlyLeaveCount)
	assert.False(t, summary.PresentEmployees[0].IsEarlyLeave)
}

func TestDailySummaryDropsUnknownPunchers(t *testing.T) {
	deptID := int64(10)
	employees := []employee.Employee{deptEmployee(1, "1001", "Ana", deptID)}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(9*time.Hour)),
		// Excluded by the department filter: neither present nor absent.
		punchFor("2001", reportDay.Add(9*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	summary, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{
		Date:         reportDay,
		DepartmentID: &deptID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalEmployees)
	assert.Equal(t, 1, summary.PresentCount)
	assert.Zero(t, summary.AbsentCount)
}

func TestDailySummarySortsByName(t *testing.T) {
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Zeca", 10),
		deptEmployee(2, "1002", "Ana", 10),
		deptEmployee(3, "1003", "Mira", 10),
		deptEmployee(4, "1004", "Bruno", 10),
	}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(9*time.Hour)),
		punchFor("1003", reportDay.Add(9*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	summary, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{Date: reportDay})
	require.NoError(t, err)

	require.Len(t, summary.PresentEmployees, 2)
	assert.Equal(t, "Mira", summary.PresentEmployees[0].EmployeeName)
	assert.Equal(t, "Zeca", summary.PresentEmployees[1].EmployeeName)

	require.Len(t, summary.AbsentEmployees, 2)
	assert.Equal(t, "Ana", summary.AbsentEmployees[0].EmployeeName)
	assert.Equal(t, "Bruno", summary.AbsentEmployees[1].EmployeeName)
}

func TestDailySummaryIdempotent(t *testing.T) {
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Ana", 10),
		deptEmployee(2, "1002", "Bruno", 10),
	}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(9*time.Hour)),
		punchFor("1001", reportDay.Add(17*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	first, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{Date: reportDay})
	require.NoError(t, err)
	second, err := svc.BuildDailySummary(context.Background(), report.DailySummaryFilter{Date: reportDay})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRangeReportRejectsInvertedRange(t *testing.T) {
	svc := newSummaryService(nil, nil)

	_, err := svc.BuildRangeReport(context.Background(), report.RangeFilter{
		FromDate: reportDay,
		ToDate:   reportDay.AddDate(0, 0, -1),
	})

	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestRangeReportPrefersTypedPunches(t *testing.T) {
	employees := []employee.Employee{deptEmployee(1, "1001", "Ana", 10)}
	// An untyped punch sits outside the typed pair on both ends; typed
	// punches must win over positional inference.
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(6*time.Hour)),
		typedPunch("1001", reportDay.Add(9*time.Hour), punch.TypeCheckIn),
		typedPunch("1001", reportDay.Add(17*time.Hour), punch.TypeCheckOut),
		punchFor("1001", reportDay.Add(23*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	out, err := svc.BuildRangeReport(context.Background(), report.RangeFilter{
		FromDate: reportDay,
		ToDate:   reportDay,
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	item := out.Items[0]
	require.NotNil(t, item.FirstCheckIn)
	require.NotNil(t, item.LastCheckOut)
	assert.Equal(t, reportDay.Add(9*time.Hour), *item.FirstCheckIn)
	assert.Equal(t, reportDay.Add(17*time.Hour), *item.LastCheckOut)
	assert.Equal(t, report.RangeStatusPresent, item.Status)
}

func TestRangeReportPositionalFallback(t *testing.T) {
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Ana", 10),
		deptEmployee(2, "1002", "Bruno", 10),
		deptEmployee(3, "1003", "Carla", 10),
	}
	punches := []punch.Punch{
		// Ana: two untyped punches resolve positionally.
		punchFor("1001", reportDay.Add(9*time.Hour)),
		punchFor("1001", reportDay.Add(17*time.Hour)),
		// Bruno: a single untyped punch is entry only.
		punchFor("1002", reportDay.Add(9*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	out, err := svc.BuildRangeReport(context.Background(), report.RangeFilter{
		FromDate: reportDay,
		ToDate:   reportDay,
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	byName := make(map[string]report.RangeItem)
	for _, item := range out.Items {
		byName[item.EmployeeName] = item
	}

	ana := byName["Ana"]
	assert.Equal(t, report.RangeStatusPresent, ana.Status)
	require.NotNil(t, ana.TotalWorkHours)
	assert.Equal(t, 8*time.Hour, *ana.TotalWorkHours)

	bruno := byName["Bruno"]
	assert.Equal(t, report.RangeStatusCheckedInOnly, bruno.Status)
	assert.Nil(t, bruno.LastCheckOut)

	carla := byName["Carla"]
	assert.Equal(t, report.RangeStatusAbsent, carla.Status)
	assert.Nil(t, carla.FirstCheckIn)

	assert.Equal(t, 3, out.TotalEmployees)
	assert.Equal(t, 2, out.PresentCount)
	assert.Equal(t, 1, out.AbsentCount)
}

func TestRangeReportFiltersByEmployee(t *testing.T) {
	employees := []employee.Employee{
		deptEmployee(1, "1001", "Ana", 10),
		deptEmployee(2, "1002", "Bruno", 10),
	}
	punches := []punch.Punch{
		punchFor("1001", reportDay.Add(9*time.Hour)),
	}
	svc := newSummaryService(employees, punches)

	target := int64(2)
	out, err := svc.BuildRangeReport(context.Background(), report.RangeFilter{
		FromDate:   reportDay,
		ToDate:     reportDay,
		EmployeeID: &target,
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Bruno", out.Items[0].EmployeeName)
	assert.Equal(t, report.RangeStatusAbsent, out.Items[0].Status)
}
