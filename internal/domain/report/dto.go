package report

import "time"

type DailySummaryFilter struct {
	Date         time.Time
	BranchID     *int64
	DepartmentID *int64
}

type RangeFilter struct {
	FromDate   time.Time
	ToDate     time.Time
	BranchID   *int64
	DeviceID   *int64
	EmployeeID *int64
}

func (f RangeFilter) Validate() error {
	if f.ToDate.Before(f.FromDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// PresentEmployee is one present-cohort line of the daily summary.
type PresentEmployee struct {
	EmployeeID     int64          `json:"employee_id"`
	EmployeeNumber string         `json:"employee_number"`
	EmployeeName   string         `json:"employee_name"`
	BiometricID    string         `json:"biometric_id"`
	DepartmentName string         `json:"department_name"`
	CheckInTime    *time.Time     `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time     `json:"check_out_time,omitempty"`
	WorkDuration   *time.Duration `json:"work_duration,omitempty"`
	Status         string         `json:"status"`
	IsLate         bool           `json:"is_late"`
	IsEarlyLeave   bool           `json:"is_early_leave"`
}

// AbsentEmployee is one absent-cohort line of the daily summary.
type AbsentEmployee struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeNumber string  `json:"employee_number"`
	EmployeeName   string  `json:"employee_name"`
	BiometricID    string  `json:"biometric_id"`
	DepartmentName string  `json:"department_name"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	AbsentReason   string  `json:"absent_reason"`
}

// DailySummary partitions the filtered active-employee population into
// present and absent cohorts for one date.
type DailySummary struct {
	ReportDate          time.Time         `json:"report_date"`
	TotalEmployees      int               `json:"total_employees"`
	PresentCount        int               `json:"present_count"`
	AbsentCount         int               `json:"absent_count"`
	LateCount           int               `json:"late_count"`
	EarlyLeaveCount     int               `json:"early_leave_count"`
	EarlyLeaveEvaluated bool              `json:"early_leave_evaluated"`
	PresentEmployees    []PresentEmployee `json:"present_employees"`
	AbsentEmployees     []AbsentEmployee  `json:"absent_employees"`
}

// RangeStatus classifies an employee's activity across a whole date range,
// not day by day.
type RangeStatus string

const (
	RangeStatusPresent       RangeStatus = "Present"
	RangeStatusCheckedInOnly RangeStatus = "CheckedInOnly"
	RangeStatusAbsent        RangeStatus = "Absent"
)

type RangeItem struct {
	EmployeeID     int64          `json:"employee_id"`
	EmployeeName   string         `json:"employee_name"`
	BiometricID    string         `json:"biometric_id"`
	DepartmentName string         `json:"department_name"`
	FirstCheckIn   *time.Time     `json:"first_check_in,omitempty"`
	LastCheckOut   *time.Time     `json:"last_check_out,omitempty"`
	TotalWorkHours *time.Duration `json:"total_work_hours,omitempty"`
	Status         RangeStatus    `json:"status"`
}

type RangeReport struct {
	FromDate       time.Time   `json:"from_date"`
	ToDate         time.Time   `json:"to_date"`
	Items          []RangeItem `json:"items"`
	TotalEmployees int         `json:"total_employees"`
	PresentCount   int         `json:"present_count"`
	AbsentCount    int         `json:"absent_count"`
}
