// Package service orchestrates mirror passes: input validation, root
// node construction, and the optional polling loop.
package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Roneo412/httpsync/internal/domain"
	"github.com/Roneo412/httpsync/internal/ignore"
	"github.com/Roneo412/httpsync/internal/logger"
	"github.com/Roneo412/httpsync/internal/mirror"
	"github.com/Roneo412/httpsync/internal/progress"
	"github.com/Roneo412/httpsync/internal/scheduler"
	"github.com/Roneo412/httpsync/internal/transport"
)

// Options configures a mirror session
type Options struct {
	// URL is the remote listing root
	URL string

	// Path is the local mirror root; must be an existing directory
	Path string

	// Interval between passes. Zero means run once and return.
	Interval time.Duration

	// IgnorePatterns are case-insensitive substrings; entries whose
	// names contain one are excluded. Nil selects the defaults
	// (desktop.ini, thumbs.db).
	IgnorePatterns []string

	// Timeout is the per-request HTTP timeout. Zero means no timeout.
	Timeout time.Duration
}

// SyncService drives mirror passes over one shared HTTP session
type SyncService struct {
	opts     Options
	client   *transport.Client
	root     *mirror.Dir
	reporter *progress.Collector
}

// New validates opts and builds the mirror tree root. All argument
// errors surface here, before any network activity.
func New(opts Options) (*SyncService, error) {
	if opts.Interval < 0 {
		return nil, fmt.Errorf("%w: loop interval must not be negative", domain.ErrInvalidArgument)
	}

	if opts.Path == "" {
		opts.Path = "."
	}
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: path %s does not exist", domain.ErrInvalidArgument, opts.Path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path %s: %v", domain.ErrInvalidArgument, opts.Path, domain.ErrNotDirectory)
	}

	u, err := url.Parse(opts.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid listing URL %q", domain.ErrInvalidArgument, opts.URL)
	}

	patterns := opts.IgnorePatterns
	if patterns == nil {
		patterns = ignore.DefaultPatterns
	}

	client := transport.New(transport.WithTimeout(opts.Timeout))
	reporter := progress.NewCollector()
	root := mirror.NewDir(opts.URL, opts.Path, ignore.New(patterns), client, reporter)

	return &SyncService{
		opts:     opts,
		client:   client,
		root:     root,
		reporter: reporter,
	}, nil
}

// RunPass executes one mirror pass over the existing tree and logs a
// summary. Node failures stay on their nodes; the returned error only
// reflects the root listing itself being unreachable.
func (s *SyncService) RunPass(ctx context.Context) error {
	s.reporter.Reset()

	status := s.root.Update(ctx)

	stats := s.reporter.Snapshot()
	logger.Get().Info("pass complete",
		"status", status.String(),
		"downloaded", stats.FilesDownloaded,
		"current", stats.FilesCurrent,
		"dirs_created", stats.DirsCreated,
		"errors", stats.Errors,
		"bytes", stats.BytesDownloaded,
	)

	if status == domain.StatusError {
		return fmt.Errorf("%w: %s", domain.ErrListingFetch, s.opts.URL)
	}
	return nil
}

// Run performs the first pass immediately, then, when an interval is
// configured, keeps re-running passes until ctx is cancelled.
// Per-pass failures are logged, never returned: only cancellation
// ends a looping run, and it ends it cleanly.
func (s *SyncService) Run(ctx context.Context) error {
	if err := s.RunPass(ctx); err != nil {
		logger.Get().Error("mirror pass failed", "error", err)
	}

	if s.opts.Interval == 0 {
		return nil
	}

	sched, err := scheduler.NewIntervalScheduler(s.opts.Interval, s)
	if err != nil {
		return err
	}

	logger.Get().Info("polling", "interval", s.opts.Interval)
	return sched.Run(ctx)
}

// Root returns the root directory node of the mirror tree
func (s *SyncService) Root() *mirror.Dir {
	return s.root
}

// Stats returns the statistics of the most recent pass
func (s *SyncService) Stats() progress.Stats {
	return s.reporter.Snapshot()
}

var _ scheduler.Runner = (*SyncService)(nil)
