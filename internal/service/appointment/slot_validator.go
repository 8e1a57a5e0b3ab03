package appointment

import (
	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

// Policy controls the optional strictness of slot validation. Both flags
// default to off, which reproduces the historical behavior: overlapping
// bookings for one employee are tolerated, and overnight shifts accept any
// candidate that merely starts after the shift start or ends before the
// shift end.
type Policy struct {
	PreventDoubleBooking bool
	StrictOvernight      bool
}

// SlotValidator checks a candidate draft against an employee's shift window
// and, under PreventDoubleBooking, the employee's existing bookings.
type SlotValidator struct {
	policy Policy
}

func NewSlotValidator(policy Policy) *SlotValidator {
	return &SlotValidator{policy: policy}
}

// Validate returns the draft with its ErrorCode set, or cleared on success.
// Validation never returns a Go error; the code travels with the draft so the
// caller can decide whether to exclude or force-submit it.
//
// shiftWindow may be nil when the employee has no shift for the date.
// existing is only consulted when double-booking prevention is on.
func (v *SlotValidator) Validate(d appointment.Draft, shiftWindow *shift.Shift, existing []appointment.Appointment) appointment.Draft {
	switch {
	case d.EmployeeID == "" || d.ClientID == "" || d.ServiceID == "" || d.StartHour == nil || d.EndHour == nil:
		d.ErrorCode = appointment.CodeMissingField
	case d.EndHour.Minutes() <= d.StartHour.Minutes():
		d.ErrorCode = appointment.CodeInvalidRange
	case shiftWindow == nil:
		d.ErrorCode = appointment.CodeNoShift
	case !shiftWindow.Contains(*d.StartHour, *d.EndHour, v.policy.StrictOvernight):
		d.ErrorCode = appointment.CodeOutsideShift
	case v.policy.PreventDoubleBooking && v.overlapsExisting(d, existing):
		d.ErrorCode = appointment.CodeSlotAlreadyTaken
	default:
		d.ErrorCode = ""
	}
	return d
}

func (v *SlotValidator) overlapsExisting(d appointment.Draft, existing []appointment.Appointment) bool {
	for _, a := range existing {
		if a.EmployeeID != d.EmployeeID || a.CancelledAt != nil {
			continue
		}
		if timepoint.Overlaps(*d.StartHour, *d.EndHour, a.StartHour, a.EndHour) {
			return true
		}
	}
	return false
}
