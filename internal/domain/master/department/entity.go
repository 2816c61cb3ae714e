package department

import "time"

type Department struct {
	ID                 int64
	DepartmentName     string
	ParentDepartmentID *int64
	IsActive           bool
	CreatedAt          time.Time
}
