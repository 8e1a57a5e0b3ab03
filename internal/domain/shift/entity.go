package shift

import (
	"time"

	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

// Shift is one employee's working window on one calendar date at one
// facility. StartHour > EndHour means the window wraps past midnight.
type Shift struct {
	ID         string
	TenantID   string
	EmployeeID string
	FacilityID string
	Date       time.Time // calendar day, no time component
	StartHour  timepoint.TimePoint
	EndHour    timepoint.TimePoint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOvernight reports whether the window wraps past midnight.
func (s Shift) IsOvernight() bool {
	return s.StartHour.After(s.EndHour)
}

// Contains reports whether the candidate range [start,end) fits inside the
// shift window.
//
// For overnight windows the historical rule is an inclusive-or: the candidate
// is accepted when it starts after the shift start OR ends before the shift
// end. That admits a candidate sitting across the wrap without being fully
// inside either side; strict mode splits the window into [start,24) and
// [0,end] and requires full containment in one of the two.
func (s Shift) Contains(start, end timepoint.TimePoint, strict bool) bool {
	if !s.IsOvernight() {
		return start.Minutes() >= s.StartHour.Minutes() && end.Minutes() <= s.EndHour.Minutes()
	}

	if strict {
		inLateSide := start.Minutes() >= s.StartHour.Minutes() && end.Minutes() <= 24*60
		inEarlySide := start.Minutes() >= 0 && end.Minutes() <= s.EndHour.Minutes()
		return inLateSide || inEarlySide
	}

	return start.Minutes() >= s.StartHour.Minutes() || end.Minutes() <= s.EndHour.Minutes()
}
