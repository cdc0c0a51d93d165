package domain

import "errors"

// Argument errors - fatal, surfaced before any network activity
var (
	// ErrInvalidArgument indicates bad caller input (negative loop
	// interval, missing local path, unparsable URL)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotDirectory indicates the local mirror root is not a directory
	ErrNotDirectory = errors.New("not a directory")
)

// Sync errors - recorded on the node that hit them, never fatal
var (
	// ErrListingFetch indicates a non-success HTTP status fetching a
	// directory listing page
	ErrListingFetch = errors.New("listing fetch failed")

	// ErrMissingLength indicates a HEAD response without a Content-Length
	ErrMissingLength = errors.New("missing content length")

	// ErrDownloadFetch indicates a non-success HTTP status fetching file
	// content
	ErrDownloadFetch = errors.New("download fetch failed")
)

// Config errors
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)
