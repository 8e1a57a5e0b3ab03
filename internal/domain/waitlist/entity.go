package waitlist

import (
	"time"

	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

// Entry is one client waiting for a slot that was unavailable when they asked
// for it.
//
// Lifecycle: Waiting (initial) → Notified when a matching appointment is
// cancelled and a claim token is issued → Claimed when a holder converts the
// token into an appointment. Losing entries for the same freed slot are
// invalidated but keep their token column, so a stale claim resolves to
// "slot already taken" rather than "invalid token". Expired tokens are swept
// back to Waiting.
type Entry struct {
	ID                 string
	TenantID           string
	ClientID           string
	EmployeeID         string
	FacilityID         string
	ServiceID          string
	Date               time.Time // calendar day, no time component
	StartHour          timepoint.TimePoint
	EndHour            timepoint.TimePoint
	IsNotified         bool
	NotificationSentAt *time.Time
	ClaimToken         *string
	ClaimExpiresAt     *time.Time
	TokenInvalidatedAt *time.Time
	IsClaimed          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// State is the derived lifecycle position of an entry.
type State string

const (
	StateWaiting  State = "waiting"
	StateNotified State = "notified"
	StateClaimed  State = "claimed"
	StateExpired  State = "expired"
)

// StateAt derives the entry's state as of now.
func (e Entry) StateAt(now time.Time) State {
	switch {
	case e.IsClaimed:
		return StateClaimed
	case !e.IsNotified || e.ClaimToken == nil:
		return StateWaiting
	case e.TokenInvalidatedAt != nil:
		return StateWaiting
	case e.ClaimExpiresAt != nil && !e.ClaimExpiresAt.After(now):
		return StateExpired
	default:
		return StateNotified
	}
}

// TokenValidAt reports whether the entry's claim token may still be honored.
func (e Entry) TokenValidAt(now time.Time) bool {
	return e.StateAt(now) == StateNotified
}

// MatchesSlot reports whether the entry is waiting for the identical
// {employee, facility, date, start, end} slot.
func (e Entry) MatchesSlot(employeeID, facilityID string, date time.Time, start, end timepoint.TimePoint) bool {
	return e.EmployeeID == employeeID &&
		e.FacilityID == facilityID &&
		e.Date.Equal(date) &&
		e.StartHour.Minutes() == start.Minutes() &&
		e.EndHour.Minutes() == end.Minutes()
}
