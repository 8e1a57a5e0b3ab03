package waitlist

import (
	"context"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

type WaitlistRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id, tenantID string) (Entry, error)
	GetByToken(ctx context.Context, token, tenantID string) (Entry, error)
	ListByFilter(ctx context.Context, tenantID string, filter EntryFilter) ([]Entry, int64, error)

	// ListWaitingForSlot returns entries in Waiting state that match the
	// freed slot exactly.
	ListWaitingForSlot(ctx context.Context, tenantID, employeeID, facilityID, serviceID string, date time.Time, start, end timepoint.TimePoint) ([]Entry, error)

	// MarkNotified transitions an entry to Notified, storing the claim token
	// and its expiry.
	MarkNotified(ctx context.Context, id, token string, sentAt, expiresAt time.Time) (Entry, error)

	// ClaimEntry atomically marks the entry holding token as claimed, iff the
	// token is still valid at now. Returns pgx.ErrNoRows when the
	// compare-and-set finds no claimable row.
	ClaimEntry(ctx context.Context, token, tenantID string, now time.Time) (Entry, error)

	// InvalidateSiblings revokes token validity for all other Notified
	// entries competing for the winner's slot. Tokens are kept on the rows so
	// a losing claim can be distinguished from an unknown token.
	InvalidateSiblings(ctx context.Context, winner Entry, now time.Time) (int64, error)

	// ResetExpired sweeps Notified entries whose token expired before now
	// back to Waiting. Returns how many rows were reset.
	ResetExpired(ctx context.Context, now time.Time) (int64, error)

	Delete(ctx context.Context, id, tenantID string) error
}
