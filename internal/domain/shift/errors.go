package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftExists      = errors.New("employee already has a shift for this date and facility")
	ErrInvalidShiftSpan = errors.New("shift start and end must differ")
)
