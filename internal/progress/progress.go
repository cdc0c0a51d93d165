// Package progress collects per-pass mirror statistics.
package progress

import "sync"

// Reporter receives mirror events as the tree is traversed
type Reporter interface {
	// DirCreated reports a local directory being created
	DirCreated(path string)
	// FileDownloaded reports a completed file download
	FileDownloaded(path string, bytes int64)
	// FileCurrent reports a file skipped because its size matches
	FileCurrent(path string)
	// Error reports a localized node failure
	Error(path string, err error)
}

// Stats summarizes one mirror pass
type Stats struct {
	DirsCreated     int
	FilesDownloaded int
	FilesCurrent    int
	Errors          int
	BytesDownloaded int64
}

// Collector implements Reporter by accumulating counters
type Collector struct {
	mu    sync.Mutex
	stats Stats
}

// NewCollector creates an empty Collector
func NewCollector() *Collector {
	return &Collector{}
}

// DirCreated records a created directory
func (c *Collector) DirCreated(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.DirsCreated++
}

// FileDownloaded records a downloaded file
func (c *Collector) FileDownloaded(path string, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.FilesDownloaded++
	c.stats.BytesDownloaded += bytes
}

// FileCurrent records a size-matched skip
func (c *Collector) FileCurrent(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.FilesCurrent++
}

// Error records a localized failure
func (c *Collector) Error(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Errors++
}

// Snapshot returns a copy of the accumulated stats
func (c *Collector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Reset clears the counters between passes
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = Stats{}
}

// NullReporter discards all events
type NullReporter struct{}

func (NullReporter) DirCreated(path string)              {}
func (NullReporter) FileDownloaded(path string, b int64) {}
func (NullReporter) FileCurrent(path string)             {}
func (NullReporter) Error(path string, err error)        {}
