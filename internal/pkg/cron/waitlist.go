package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
)

// WaitlistJobs sweeps expired claim tokens. Entries whose notification window
// lapsed go back to Waiting so a future cancellation can notify them again.
type WaitlistJobs struct {
	waitlistRepo waitlist.WaitlistRepository
}

func NewWaitlistJobs(waitlistRepo waitlist.WaitlistRepository) *WaitlistJobs {
	return &WaitlistJobs{waitlistRepo: waitlistRepo}
}

// SweepExpiredTokens resets Notified entries whose claim token has expired.
func (j *WaitlistJobs) SweepExpiredTokens(ctx context.Context) error {
	reset, err := j.waitlistRepo.ResetExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reset expired waitlist tokens: %w", err)
	}
	if reset > 0 {
		slog.Info("Expired waitlist tokens swept", "count", reset)
	}
	return nil
}

// Register adds all waitlist jobs to the scheduler.
func (j *WaitlistJobs) Register(s *Scheduler, interval time.Duration) {
	s.AddJob("waitlist_token_sweep", interval, j.SweepExpiredTokens)
}
