package attendance

import "time"

// Status classifies one employee's reconciled calendar day.
type Status string

const (
	StatusAbsent         Status = "Absent"
	StatusCheckInOnly    Status = "CheckInOnly"
	StatusCheckOutOnly   Status = "CheckOutOnly"
	StatusHalfDay        Status = "HalfDay"
	StatusFullAttendance Status = "FullAttendance"
)

// DayRecord is the reconciler's output for one (employee, day) pair. It is
// derived on every query and never persisted.
type DayRecord struct {
	BiometricID  string     `json:"biometric_id"`
	Date         time.Time  `json:"date"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	WorkingHours float64    `json:"working_hours"`
	Status       Status     `json:"status"`
}

// DayKey groups punches by employee and local calendar day.
type DayKey struct {
	BiometricID string
	Year        int
	Month       time.Month
	Day         int
}

// DayKeyFor derives the grouping key from a punch timestamp's local date.
func DayKeyFor(biometricID string, punchedAt time.Time) DayKey {
	y, m, d := punchedAt.Date()
	return DayKey{BiometricID: biometricID, Year: y, Month: m, Day: d}
}

// Row is a presentation-ready attendance line: a DayRecord joined with
// directory names and the shift in effect.
type Row struct {
	BiometricID  string     `json:"biometric_id"`
	EmployeeName string     `json:"employee_name"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	BranchName   string     `json:"branch_name"`
	DeviceName   string     `json:"device_name"`
	WorkingHours float64    `json:"working_hours"`
	Status       Status     `json:"status"`
	ShiftName    string     `json:"shift_name"`
}
