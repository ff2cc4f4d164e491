package debian

import "pault.ag/go/debian/version"

// Version is an opaque Debian version string. The raw text is kept
// verbatim so that rendering never normalises what was parsed.
type Version struct {
	raw    string
	parsed *version.Version
}

// ReleaseName identifies a distribution or suite (e.g. "unstable",
// "jaunty-seereason").
type ReleaseName string

// Relation is a single entry of a relationship field such as "Depends",
// with optional alternatives.
type Relation struct {
	Names      []string
	Version    string
	Constraint string
}
