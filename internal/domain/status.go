package domain

// Status represents the lifecycle state of a mirrored node
type Status int

const (
	// StatusPending means the node was discovered but never updated
	StatusPending Status = iota

	// StatusUpdating means a directory node is mid-traversal
	StatusUpdating

	// StatusUpdated means the last update completed successfully
	StatusUpdated

	// StatusError means the last update hit a localized failure
	StatusError
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUpdating:
		return "updating"
	case StatusUpdated:
		return "updated"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
