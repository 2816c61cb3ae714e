package shift

import "time"

type AssignShiftRequest struct {
	EmployeeID    int64      `json:"-"`
	ShiftID       int64      `json:"shift_id"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func (r AssignShiftRequest) Validate() error {
	if r.EffectiveTo != nil && r.EffectiveTo.Before(r.EffectiveFrom) {
		return ErrInvalidAssignmentWindow
	}
	return nil
}

type ShiftResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	LateMinutes        int     `json:"late_minutes"`
	EarlyMinutes       int     `json:"early_minutes"`
	WorkMinutes        int     `json:"work_minutes"`
	MinHoursForFullDay float64 `json:"min_hours_for_full_day"`
	MaxRegularHours    float64 `json:"max_regular_hours"`
	IsOvernight        bool    `json:"is_overnight"`
}

type AssignmentResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	ShiftID       int64   `json:"shift_id"`
	ShiftName     *string `json:"shift_name,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}
