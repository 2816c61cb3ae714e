package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch event not found")
	ErrNoPunchIDs    = errors.New("no punch ids provided")
)
