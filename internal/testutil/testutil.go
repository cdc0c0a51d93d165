// Package testutil holds shared helpers for mirror tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// CreateTestFile creates a test file with the given content
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	return path
}

// ListingHTML builds an HTML page in the shape produced by Python's
// http.server directory listing, one anchor per name. Names ending in
// "/" render as directory links.
func ListingHTML(names ...string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE HTML>\n<html>\n<head><title>Directory listing</title></head>\n")
	sb.WriteString("<body>\n<h1>Directory listing</h1>\n<hr>\n<ul>\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "<li><a href=%q>%s</a></li>\n", name, name)
	}
	sb.WriteString("</ul>\n<hr>\n</body>\n</html>\n")
	return sb.String()
}

// ListingServer serves a fake remote directory tree over HTTP.
// Listings map URL paths (with trailing slash) to entry names;
// files map URL paths to content.
type ListingServer struct {
	*httptest.Server

	mu       sync.Mutex
	listings map[string][]string
	files    map[string][]byte
	getCount map[string]int
}

// NewListingServer starts a ListingServer; it is closed via t.Cleanup
func NewListingServer(t *testing.T) *ListingServer {
	t.Helper()

	s := &ListingServer{
		listings: make(map[string][]string),
		files:    make(map[string][]byte),
		getCount: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// AddListing registers a directory listing at the given URL path
func (s *ListingServer) AddListing(path string, names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[path] = names
}

// AddFile registers file content at the given URL path
func (s *ListingServer) AddFile(path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// GetCount returns how many GET requests hit the given URL path
func (s *ListingServer) GetCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCount[path]
}

func (s *ListingServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Method == http.MethodGet {
		s.getCount[r.URL.Path]++
	}

	if names, ok := s.listings[r.URL.Path]; ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, ListingHTML(names...))
		return
	}

	if content, ok := s.files[r.URL.Path]; ok {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
		if r.Method == http.MethodHead {
			return
		}
		w.Write(content)
		return
	}

	http.NotFound(w, r)
}

// WaitForCondition waits for a condition to be true with timeout
func WaitForCondition(timeout time.Duration, condition func() bool) bool {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if condition() {
			return true
		}

		if time.Now().After(deadline) {
			return false
		}

		<-ticker.C
	}
}
