// Package mirror implements the recursive listing-to-filesystem
// synchronization tree. A Dir node fetches and parses its own listing
// page, lazily creates child nodes, and updates the whole subtree in
// discovery order; a File node downloads its content when the local
// copy is absent or differs in size from the remote Content-Length.
package mirror

import (
	"context"

	"github.com/Roneo412/httpsync/internal/domain"
)

// Node is one remote object mapped to one local path. Both variants
// record failures on their own status instead of propagating them, so
// a pass makes best-effort progress across the whole tree.
type Node interface {
	// Update synchronizes this node (and, for directories, its
	// subtree) and returns the resulting status
	Update(ctx context.Context) domain.Status

	// Status returns the status left by the last Update
	Status() domain.Status

	// LocalPath returns the filesystem path this node materializes at
	LocalPath() string
}
