package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// IntervalScheduler re-runs a Runner on a fixed interval using
// time.Ticker. Run blocks until the context is cancelled; an
// in-flight pass always runs to completion before the next tick
// check.
type IntervalScheduler struct {
	interval time.Duration
	runner   Runner

	mu      sync.RWMutex
	running bool
	stats   struct {
		lastRunTime    time.Time
		nextRunTime    time.Time
		totalRuns      int
		successfulRuns int
		failedRuns     int
		lastError      string
	}
}

// NewIntervalScheduler creates a new interval-based scheduler
func NewIntervalScheduler(interval time.Duration, runner Runner) (*IntervalScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", interval)
	}

	if runner == nil {
		return nil, fmt.Errorf("runner cannot be nil")
	}

	return &IntervalScheduler{
		interval: interval,
		runner:   runner,
	}, nil
}

// Run executes the scheduling loop until ctx is cancelled.
// Cancellation is a clean stop, not an error.
func (s *IntervalScheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.running = true
	s.stats.nextRunTime = time.Now().Add(s.interval)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.executePass(ctx)
		}
	}
}

// executePass runs one pass and updates statistics
func (s *IntervalScheduler) executePass(ctx context.Context) {
	s.mu.Lock()
	s.stats.lastRunTime = time.Now()
	s.stats.totalRuns++
	s.stats.nextRunTime = time.Now().Add(s.interval)
	s.mu.Unlock()

	err := s.runner.RunPass(ctx)

	s.mu.Lock()
	if err != nil {
		s.stats.failedRuns++
		s.stats.lastError = err.Error()
	} else {
		s.stats.successfulRuns++
		s.stats.lastError = ""
	}
	s.mu.Unlock()
}

// Status returns the current scheduler status
func (s *IntervalScheduler) Status() *Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Status{
		Running:        s.running,
		LastRunTime:    s.stats.lastRunTime,
		NextRunTime:    s.stats.nextRunTime,
		TotalRuns:      s.stats.totalRuns,
		SuccessfulRuns: s.stats.successfulRuns,
		FailedRuns:     s.stats.failedRuns,
		LastError:      s.stats.lastError,
	}
}
