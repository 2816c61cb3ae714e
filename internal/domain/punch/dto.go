package punch

import (
	"time"

	"github.com/veritime/attend-backend-go/internal/pkg/validator"
)

// RangeFilter narrows a date-range fetch from the punch store. From is
// inclusive, To exclusive.
type RangeFilter struct {
	BranchID *int64
	DeviceID *int64
	Search   *string
}

// ListFilter is the admin log view filter (paginated).
type ListFilter struct {
	FromDate  *string
	ToDate    *string
	BranchID  *int64
	DeviceID  *int64
	Search    *string
	Page      int
	Limit     int
	SortOrder string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	if f.FromDate != nil && *f.FromDate != "" {
		parsed, ok := validator.IsValidDate(*f.FromDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "from_date", Message: "must be in YYYY-MM-DD format"})
		}
		from = parsed
	}
	if f.ToDate != nil && *f.ToDate != "" {
		parsed, ok := validator.IsValidDate(*f.ToDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must be in YYYY-MM-DD format"})
		}
		to = parsed
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must not be before from_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkRequest struct {
	IDs []int64 `json:"ids"`
}

func (r MarkRequest) Validate() error {
	if len(r.IDs) == 0 {
		return ErrNoPunchIDs
	}
	return nil
}

type PunchResponse struct {
	ID           int64   `json:"id"`
	BiometricID  string  `json:"biometric_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	BranchName   *string `json:"branch_name,omitempty"`
	DeviceName   *string `json:"device_name,omitempty"`
	PunchedAt    string  `json:"punched_at"`
	Type         *Type   `json:"type,omitempty"`
	VerifyMethod *string `json:"verify_method,omitempty"`
	IsManual     bool    `json:"is_manual"`
	IsSynced     bool    `json:"is_synced"`
	IsProcessed  bool    `json:"is_processed"`
}

type ListPunchesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Punches    []PunchResponse `json:"punches"`
}
