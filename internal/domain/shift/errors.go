package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("work shift not found")
	ErrInvalidAssignmentWindow = errors.New("assignment end date must not be before start date")
	ErrAssignmentShiftInactive = errors.New("cannot assign an inactive shift")
)
