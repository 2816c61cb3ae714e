package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("to date must not be before from date")

	// ErrEarlyLeaveNotEvaluated is returned by the placeholder early-leave
	// policy so callers can tell "not yet computed" apart from "computed,
	// not early".
	ErrEarlyLeaveNotEvaluated = errors.New("early-leave policy not evaluated")
)
