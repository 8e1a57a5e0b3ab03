package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobImmediatelyAndOnInterval(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("counter", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	// Stop waits for the job goroutine, so the count is frozen afterwards.
	frozen := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, runs.Load())
}

func TestSchedulerIgnoresJobsAddedAfterStart(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewScheduler()
	s.Start()
	defer s.Stop()

	s.AddJob("late", time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestSchedulerKeepsRunningAfterJobError(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("flaky", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return assert.AnError
	})

	s.Start()
	defer s.Stop()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
}
