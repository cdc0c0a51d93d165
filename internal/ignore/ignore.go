// Package ignore decides which listing entries are excluded from the
// mirror.
package ignore

import "strings"

// DefaultPatterns are the entry names skipped when the caller supplies
// no patterns of their own.
var DefaultPatterns = []string{"desktop.ini", "thumbs.db"}

// Filter matches entry names against a fixed set of case-insensitive
// substring patterns. Filters are immutable and inherited by every
// directory in the tree.
type Filter struct {
	patterns []string
}

// New creates a Filter from the given patterns, lowered once up front
func New(patterns []string) Filter {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return Filter{patterns: lowered}
}

// Match reports whether name contains any pattern as a substring.
// The match is case-insensitive and unanchored, so pattern
// "thumbs.db" also matches "old_thumbs.db.bak".
func (f Filter) Match(name string) bool {
	lowered := strings.ToLower(name)
	for _, p := range f.patterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// Patterns returns the lowered patterns in order
func (f Filter) Patterns() []string {
	return f.patterns
}
