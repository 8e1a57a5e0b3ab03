package appointment

import (
	"testing"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t *testing.T, s string) timepoint.TimePoint {
	t.Helper()
	v, err := timepoint.Parse(s)
	require.NoError(t, err)
	return v
}

func draftFor(t *testing.T, start, end string) appointment.Draft {
	t.Helper()
	s := tp(t, start)
	e := tp(t, end)
	return appointment.Draft{
		EmployeeID: "emp-1",
		ClientID:   "client-1",
		ServiceID:  "svc-1",
		StartHour:  &s,
		EndHour:    &e,
	}
}

func shiftFor(t *testing.T, start, end string) *shift.Shift {
	t.Helper()
	return &shift.Shift{
		ID:         "shift-1",
		EmployeeID: "emp-1",
		StartHour:  tp(t, start),
		EndHour:    tp(t, end),
	}
}

func TestValidateAcceptsSlotInsideShift(t *testing.T) {
	v := NewSlotValidator(Policy{})

	got := v.Validate(draftFor(t, "09:00", "10:00"), shiftFor(t, "08:00", "16:00"), nil)

	assert.True(t, got.Valid())
	assert.Empty(t, got.ErrorCode)
}

func TestValidateMissingField(t *testing.T) {
	v := NewSlotValidator(Policy{})

	d := draftFor(t, "09:00", "10:00")
	d.ClientID = ""

	got := v.Validate(d, shiftFor(t, "08:00", "16:00"), nil)
	assert.Equal(t, appointment.CodeMissingField, got.ErrorCode)

	d = draftFor(t, "09:00", "10:00")
	d.StartHour = nil
	got = v.Validate(d, shiftFor(t, "08:00", "16:00"), nil)
	assert.Equal(t, appointment.CodeMissingField, got.ErrorCode)
}

func TestValidateInvalidRange(t *testing.T) {
	v := NewSlotValidator(Policy{})

	got := v.Validate(draftFor(t, "10:00", "10:00"), shiftFor(t, "08:00", "16:00"), nil)
	assert.Equal(t, appointment.CodeInvalidRange, got.ErrorCode)

	got = v.Validate(draftFor(t, "11:00", "10:00"), shiftFor(t, "08:00", "16:00"), nil)
	assert.Equal(t, appointment.CodeInvalidRange, got.ErrorCode)
}

func TestValidateNoShift(t *testing.T) {
	v := NewSlotValidator(Policy{})

	got := v.Validate(draftFor(t, "09:00", "10:00"), nil, nil)
	assert.Equal(t, appointment.CodeNoShift, got.ErrorCode)
}

func TestValidateOutsideShift(t *testing.T) {
	v := NewSlotValidator(Policy{})

	// 07:30-08:30 straddles the shift start
	got := v.Validate(draftFor(t, "07:30", "08:30"), shiftFor(t, "08:00", "16:00"), nil)
	assert.Equal(t, appointment.CodeOutsideShift, got.ErrorCode)

	// touching both boundaries is allowed
	got = v.Validate(draftFor(t, "08:00", "16:00"), shiftFor(t, "08:00", "16:00"), nil)
	assert.True(t, got.Valid())
}

func TestValidateOvernightShiftInclusiveOr(t *testing.T) {
	v := NewSlotValidator(Policy{})
	overnight := shiftFor(t, "22:00", "06:00")

	// starts after shift start
	got := v.Validate(draftFor(t, "23:00", "23:45"), overnight, nil)
	assert.True(t, got.Valid())

	// ends before shift end
	got = v.Validate(draftFor(t, "05:00", "05:45"), overnight, nil)
	assert.True(t, got.Valid())

	// the lax rule admits a candidate spanning the whole wrap
	got = v.Validate(draftFor(t, "23:00", "23:59"), overnight, nil)
	assert.True(t, got.Valid())

	// fully in the dead zone between shift end and shift start
	got = v.Validate(draftFor(t, "10:00", "11:00"), overnight, nil)
	assert.Equal(t, appointment.CodeOutsideShift, got.ErrorCode)
}

func TestValidateOvernightShiftStrict(t *testing.T) {
	v := NewSlotValidator(Policy{StrictOvernight: true})
	overnight := shiftFor(t, "22:00", "06:00")

	// fully inside the late side
	got := v.Validate(draftFor(t, "23:00", "23:45"), overnight, nil)
	assert.True(t, got.Valid())

	// fully inside the early side
	got = v.Validate(draftFor(t, "01:00", "02:00"), overnight, nil)
	assert.True(t, got.Valid())

	// starts after shift start but ends past the early-side boundary
	got = v.Validate(draftFor(t, "07:00", "08:00"), overnight, nil)
	assert.Equal(t, appointment.CodeOutsideShift, got.ErrorCode)
}

func TestValidateDoubleBookingPolicy(t *testing.T) {
	existing := []appointment.Appointment{
		{
			ID:         "apt-1",
			EmployeeID: "emp-1",
			StartHour:  tp(t, "09:30"),
			EndHour:    tp(t, "10:30"),
		},
	}

	// overlap tolerated with the policy off
	lax := NewSlotValidator(Policy{})
	got := lax.Validate(draftFor(t, "09:00", "10:00"), shiftFor(t, "08:00", "16:00"), existing)
	assert.True(t, got.Valid())

	// rejected with the policy on
	strict := NewSlotValidator(Policy{PreventDoubleBooking: true})
	got = strict.Validate(draftFor(t, "09:00", "10:00"), shiftFor(t, "08:00", "16:00"), existing)
	assert.Equal(t, appointment.CodeSlotAlreadyTaken, got.ErrorCode)

	// back-to-back is not an overlap
	got = strict.Validate(draftFor(t, "10:30", "11:30"), shiftFor(t, "08:00", "16:00"), existing)
	assert.True(t, got.Valid())
}

func TestValidateDoubleBookingIgnoresCancelled(t *testing.T) {
	cancelledAt := time.Now()
	existing := []appointment.Appointment{
		{
			ID:          "apt-1",
			EmployeeID:  "emp-1",
			StartHour:   tp(t, "09:00"),
			EndHour:     tp(t, "10:00"),
			CancelledAt: &cancelledAt,
		},
	}

	v := NewSlotValidator(Policy{PreventDoubleBooking: true})
	got := v.Validate(draftFor(t, "09:00", "10:00"), shiftFor(t, "08:00", "16:00"), existing)
	assert.True(t, got.Valid())
}
