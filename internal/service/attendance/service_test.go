package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritime/attend-backend-go/internal/domain/attendance"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byBiometricID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByBiometricIDs(ctx context.Context, biometricIDs []string) (map[string]employee.Employee, error) {
	out := make(map[string]employee.Employee)
	for _, id := range biometricIDs {
		if emp, ok := f.byBiometricID[id]; ok {
			out[id] = emp
		}
	}
	return out, nil
}

type fakeResolver struct {
	shifts map[int64]*shift.WorkShift
}

func (f *fakeResolver) ResolveForDate(ctx context.Context, employeeID int64, date time.Time) (*shift.WorkShift, error) {
	return f.shifts[employeeID], nil
}

func punchAt(biometricID string, t time.Time) punch.Punch {
	return punch.Punch{BiometricID: biometricID, PunchedAt: t}
}

func newTestReconciler() attendance.Reconciler {
	return NewReconciler(&fakeEmployeeRepo{}, &fakeResolver{})
}

func TestReconcileDayEmpty(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	record := r.ReconcileDay("1001", date, nil)

	assert.Equal(t, attendance.StatusAbsent, record.Status)
	assert.Nil(t, record.CheckIn)
	assert.Nil(t, record.CheckOut)
	assert.Zero(t, record.WorkingHours)
}

func TestReconcileDaySinglePunch(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := date.Add(9*time.Hour + 5*time.Minute)

	record := r.ReconcileDay("1001", date, []punch.Punch{punchAt("1001", in)})

	require.NotNil(t, record.CheckIn)
	assert.Equal(t, in, *record.CheckIn)
	assert.Nil(t, record.CheckOut)
	assert.Equal(t, attendance.StatusCheckInOnly, record.Status)
	assert.Zero(t, record.WorkingHours)
}

func TestReconcileDayFullDay(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := date.Add(9*time.Hour + 5*time.Minute)
	out := date.Add(17*time.Hour + 30*time.Minute)

	record := r.ReconcileDay("1001", date, []punch.Punch{
		punchAt("1001", out),
		punchAt("1001", in),
	})

	require.NotNil(t, record.CheckIn)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, in, *record.CheckIn)
	assert.Equal(t, out, *record.CheckOut)
	assert.InDelta(t, 8.417, record.WorkingHours, 0.001)
	assert.Equal(t, attendance.StatusFullAttendance, record.Status)
}

func TestReconcileDayDoubleTapZeroesHours(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := date.Add(9 * time.Hour)
	out := in.Add(20 * time.Minute)

	record := r.ReconcileDay("1001", date, []punch.Punch{
		punchAt("1001", in),
		punchAt("1001", out),
	})

	require.NotNil(t, record.CheckOut)
	assert.Zero(t, record.WorkingHours)
	// The no-interval pair must land on CheckInOnly, never HalfDay.
	assert.Equal(t, attendance.StatusCheckInOnly, record.Status)
}

func TestReconcileDayExactThreshold(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := date.Add(9 * time.Hour)
	out := in.Add(30 * time.Minute)

	record := r.ReconcileDay("1001", date, []punch.Punch{
		punchAt("1001", in),
		punchAt("1001", out),
	})

	assert.InDelta(t, 0.5, record.WorkingHours, 0.0001)
	assert.Equal(t, attendance.StatusHalfDay, record.Status)
}

func TestReconcileDayHalfDay(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := date.Add(9 * time.Hour)
	out := in.Add(3 * time.Hour)

	record := r.ReconcileDay("1001", date, []punch.Punch{
		punchAt("1001", in),
		punchAt("1001", out),
	})

	assert.InDelta(t, 3.0, record.WorkingHours, 0.0001)
	assert.Equal(t, attendance.StatusHalfDay, record.Status)
}

func TestReconcileDayIsPure(t *testing.T) {
	r := newTestReconciler()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt("1001", date.Add(17*time.Hour)),
		punchAt("1001", date.Add(9*time.Hour)),
	}

	first := r.ReconcileDay("1001", date, punches)
	second := r.ReconcileDay("1001", date, punches)

	assert.Equal(t, first, second)
	// Input order must survive the internal sort.
	assert.Equal(t, date.Add(17*time.Hour), punches[0].PunchedAt)
}

func TestBuildRowsGroupsByEmployeeAndDay(t *testing.T) {
	ctx := context.Background()
	dayShift := &shift.WorkShift{ID: 1, Name: "Day Shift"}
	r := NewReconciler(
		&fakeEmployeeRepo{byBiometricID: map[string]employee.Employee{
			"1001": {ID: 1, BiometricID: "1001", FullName: "Ana Silva"},
			"1002": {ID: 2, BiometricID: "1002", FullName: "Bruno Costa"},
		}},
		&fakeResolver{shifts: map[int64]*shift.WorkShift{1: dayShift}},
	)

	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	punches := []punch.Punch{
		punchAt("1001", day1.Add(9*time.Hour)),
		punchAt("1001", day1.Add(17*time.Hour)),
		punchAt("1001", day2.Add(9*time.Hour)),
		punchAt("1002", day1.Add(8*time.Hour)),
		// Unknown to the directory; must be dropped, not fail the report.
		punchAt("9999", day1.Add(10*time.Hour)),
	}

	rows, err := r.BuildRows(ctx, punches)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Ana Silva", rows[0].EmployeeName)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, attendance.StatusFullAttendance, rows[0].Status)
	assert.Equal(t, "Day Shift", rows[0].ShiftName)

	assert.Equal(t, "Bruno Costa", rows[1].EmployeeName)
	assert.Equal(t, attendance.StatusCheckInOnly, rows[1].Status)
	assert.Empty(t, rows[1].ShiftName)

	assert.Equal(t, "Ana Silva", rows[2].EmployeeName)
	assert.Equal(t, "2024-03-02", rows[2].Date)
	assert.Equal(t, attendance.StatusCheckInOnly, rows[2].Status)
}
