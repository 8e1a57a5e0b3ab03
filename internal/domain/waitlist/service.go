package waitlist

import (
	"context"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
)

type WaitlistService interface {
	Join(ctx context.Context, req JoinWaitlistRequest) (EntryResponse, error)
	List(ctx context.Context, filter EntryFilter) ([]EntryResponse, int64, error)

	// Remove deletes an entry on behalf of its owning client; ErrNotOwner
	// when clientID does not match.
	Remove(ctx context.Context, entryID, clientID string) error

	// Claim converts a valid token into a new appointment. Exactly one claim
	// succeeds per freed slot; competitors get ErrSlotAlreadyTaken.
	Claim(ctx context.Context, req ClaimRequest) (appointment.AppointmentResponse, error)

	// NotifyFreedSlot scans waiting entries matching the cancelled
	// appointment's slot, issues claim tokens and pushes notifications. It is
	// invoked asynchronously after a cancel; its effects may lag the cancel
	// response.
	NotifyFreedSlot(ctx context.Context, a appointment.Appointment) error
}
