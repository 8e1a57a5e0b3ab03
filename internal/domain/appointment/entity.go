package appointment

import (
	"time"

	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

type Appointment struct {
	ID          string
	TenantID    string
	EmployeeID  string
	ClientID    string
	ServiceID   string
	FacilityID  string
	Date        time.Time // calendar day, no time component
	StartHour   timepoint.TimePoint
	EndHour     timepoint.TimePoint
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// Overlaps reports whether two appointments for the same employee intersect
// on their [start,end) ranges. Date and employee equality are the caller's
// concern.
func (a Appointment) Overlaps(other Appointment) bool {
	return timepoint.Overlaps(a.StartHour, a.EndHour, other.StartHour, other.EndHour)
}

// Draft is an unpersisted candidate appointment produced during bulk
// generation. A draft with a non-empty ErrorCode is excluded from submission
// but kept visible for review. Nil hours mean the field was absent on the
// wire, which is distinct from 00:00.
type Draft struct {
	EmployeeID string
	ClientID   string
	ServiceID  string
	StartHour  *timepoint.TimePoint
	EndHour    *timepoint.TimePoint
	ErrorCode  ErrorCode
}

// Valid reports whether the draft passed validation.
func (d Draft) Valid() bool {
	return d.ErrorCode == ""
}
