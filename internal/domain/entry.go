package domain

// Entry is one anchor extracted from a directory listing page
type Entry struct {
	// Name is the anchor's visible text, including the trailing
	// slash when it denotes a directory
	Name string

	// URL is the anchor's href resolved against the listing page URL
	URL string

	// IsDir is true iff Name ends with a slash
	IsDir bool
}
