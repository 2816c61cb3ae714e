package shift

import "time"

// WorkShift is the policy a reconciled day is judged against. StartTime and
// EndTime carry only the time-of-day component.
type WorkShift struct {
	ID                 int64
	Name               string
	StartTime          time.Time
	EndTime            time.Time
	LateMinutes        int
	EarlyMinutes       int
	WorkMinutes        int
	BreakMinutes       int
	MinHoursForFullDay float64
	MaxRegularHours    float64
	IsOvernight        bool
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Assignment is a time-bounded shift override for one employee. Windows are
// not supposed to overlap; when they do, the resolver prefers the latest
// EffectiveFrom.
type Assignment struct {
	ID            int64
	EmployeeID    int64
	ShiftID       int64
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Notes         *string
	IsActive      bool
	CreatedAt     time.Time

	// DTO
	Shift *WorkShift
}

// Covers reports whether the assignment window includes the given date. An
// open-ended assignment (nil EffectiveTo) covers everything from
// EffectiveFrom onward.
func (a Assignment) Covers(date time.Time) bool {
	if a.EffectiveFrom.After(date) {
		return false
	}
	return a.EffectiveTo == nil || !a.EffectiveTo.Before(date)
}
