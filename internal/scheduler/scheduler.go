package scheduler

import (
	"context"
	"time"
)

// Runner is the interface schedulers use to execute mirror passes
type Runner interface {
	// RunPass executes one full mirror pass
	RunPass(ctx context.Context) error
}

// Status represents the current state of a scheduler
type Status struct {
	Running        bool
	LastRunTime    time.Time
	NextRunTime    time.Time
	TotalRuns      int
	SuccessfulRuns int
	FailedRuns     int
	LastError      string
}
