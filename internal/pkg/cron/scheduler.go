package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs named maintenance jobs on fixed intervals. Each job gets its
// own goroutine and ticker; Stop cancels the shared context and waits for
// in-flight runs to finish.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Jobs registered after Start are ignored.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		slog.Warn("Job registered after scheduler start, ignoring", "name", name)
		return
	}
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	slog.Info("Background job registered", "name", name, "interval", interval)
}

// Start launches every registered job. Each job runs once immediately, then
// on its interval. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Background scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and blocks until running invocations return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Background scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.invoke(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.invoke(j)
		}
	}
}

func (s *Scheduler) invoke(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Background job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Background job completed", "name", j.name, "duration", time.Since(start))
}
