package mirror

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Roneo412/httpsync/internal/domain"
	"github.com/Roneo412/httpsync/internal/ignore"
	"github.com/Roneo412/httpsync/internal/listing"
	"github.com/Roneo412/httpsync/internal/logger"
	"github.com/Roneo412/httpsync/internal/progress"
	"github.com/Roneo412/httpsync/internal/transport"
)

// Dir is one remote directory mapped to one local path. It owns its
// children exclusively; the structure is a pure forward tree.
type Dir struct {
	url       string
	localPath string
	filter    ignore.Filter
	client    *transport.Client
	reporter  progress.Reporter
	status    domain.Status

	// children maps entry display name to node, with insertion
	// order preserved in order. The map only grows: entries that
	// vanish from a later listing are kept and still updated.
	children map[string]Node
	order    []string
}

// NewDir creates a Dir node in the pending state. The filter and
// client are inherited by every descendant.
func NewDir(url, localPath string, filter ignore.Filter, client *transport.Client, reporter progress.Reporter) *Dir {
	return &Dir{
		url:       url,
		localPath: localPath,
		filter:    filter,
		client:    client,
		reporter:  reporter,
		status:    domain.StatusPending,
		children:  make(map[string]Node),
	}
}

// Update fetches and parses this directory's listing page, creates
// missing children, and recursively updates every child in discovery
// order. A failed listing fetch marks this node only; the subtree is
// not traversed and existing children are left untouched.
func (d *Dir) Update(ctx context.Context) domain.Status {
	d.status = domain.StatusUpdating

	body, err := d.client.Fetch(ctx, d.url)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrListingFetch, err)
		logger.Get().Error("failed to fetch listing", "url", d.url, "error", err)
		d.reporter.Error(d.localPath, err)
		d.status = domain.StatusError
		return d.status
	}

	if _, err := os.Stat(d.localPath); os.IsNotExist(err) {
		logger.Get().Info("creating directory", "path", d.localPath)
		if err := os.MkdirAll(d.localPath, 0755); err != nil {
			logger.Get().Error("failed to create directory", "path", d.localPath, "error", err)
			d.reporter.Error(d.localPath, err)
			d.status = domain.StatusError
			return d.status
		}
		d.reporter.DirCreated(d.localPath)
	}

	entries, err := listing.Parse(bytes.NewReader(body), d.url)
	if err != nil {
		logger.Get().Error("failed to parse listing", "url", d.url, "error", err)
		d.reporter.Error(d.localPath, err)
		d.status = domain.StatusError
		return d.status
	}

	for _, entry := range entries {
		// An ignored entry aborts the rest of this listing pass,
		// not just the entry itself. The original tool behaves
		// this way and mirrors produced here must match it.
		if d.filter.Match(entry.Name) {
			logger.Get().Debug("ignored entry, skipping rest of listing",
				"name", entry.Name, "url", d.url)
			break
		}

		if _, ok := d.children[entry.Name]; ok {
			continue
		}

		childPath := filepath.Join(d.localPath, entry.Name)
		var child Node
		if entry.IsDir {
			child = NewDir(entry.URL, childPath, d.filter, d.client, d.reporter)
		} else {
			child = NewFile(entry.URL, childPath, d.client, d.reporter)
		}
		d.children[entry.Name] = child
		d.order = append(d.order, entry.Name)
	}

	// Children from prior passes are updated too, even when absent
	// from the current listing. Child failures stay on the child.
	for _, name := range d.order {
		d.children[name].Update(ctx)
	}

	d.status = domain.StatusUpdated
	return d.status
}

// Status returns the status left by the last Update
func (d *Dir) Status() domain.Status { return d.status }

// LocalPath returns the local directory path
func (d *Dir) LocalPath() string { return d.localPath }

// URL returns the remote listing page URL
func (d *Dir) URL() string { return d.url }

// Child returns the child node for an entry name, or nil
func (d *Dir) Child(name string) Node {
	return d.children[name]
}

// Children returns the child nodes in discovery order
func (d *Dir) Children() []Node {
	nodes := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		nodes = append(nodes, d.children[name])
	}
	return nodes
}
