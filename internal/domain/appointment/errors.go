package appointment

import "errors"

// ErrorCode classifies why a draft was rejected. Draft validation never
// returns a Go error; the code travels with the draft so callers can decide
// whether to exclude or force-submit.
type ErrorCode string

const (
	CodeMissingField     ErrorCode = "missing_field"
	CodeInvalidRange     ErrorCode = "invalid_range"
	CodeNoShift          ErrorCode = "no_shift"
	CodeOutsideShift     ErrorCode = "outside_shift"
	CodeSlotAlreadyTaken ErrorCode = "slot_already_taken"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentCancelled = errors.New("appointment already cancelled")
	ErrSlotConfiguration    = errors.New("bulk generation misconfigured: employees, service and a positive time range are required")
	ErrUnknownEmployee      = errors.New("appointment references an employee not present in the schedule")
	ErrOutsideShift         = errors.New("appointment is outside the employee shift window")
	ErrNoShift              = errors.New("employee has no shift for this date")
	ErrSlotTaken            = errors.New("employee already has an appointment in this time range")
	ErrInvalidRange         = errors.New("end hour must be after start hour")
	ErrInvalidRequestData   = errors.New("invalid request data")
)
