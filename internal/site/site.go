// Package site holds the global site constants.
//
// These are the single source of truth for the site's identity. They are
// injected into every place that renders page metadata (listings, scaffolded
// front-matter) rather than redefined locally, so the values cannot drift
// between consumers.
package site

const (
	// Title is the site-wide title used for page metadata.
	Title = "Tom Keim"

	// Description is the site-wide description used for page metadata.
	Description = "Notes on data platforms, cloud automation and software engineering."
)
