package changelog

import "github.com/djcass44/debian-changes/pkg/debian"

// ChangeLogEntry is one element of a changelog: either an Entry or the
// WhiteSpace found between two entries.
type ChangeLogEntry interface {
	String() string
	isChangeLogEntry()
}

// Entry is a single released version of a package, bounded by its header
// line and its signature line.
type Entry struct {
	Package       string               `json:"package"`
	Version       debian.Version       `json:"version"`
	Distributions []debian.ReleaseName `json:"distributions"`
	Urgency       string               `json:"urgency"`
	// Details holds the change details verbatim, including blank lines.
	Details string `json:"details"`
	// Who is the maintainer or uploader as written in the signature.
	Who  string `json:"who"`
	Date string `json:"date"`
}

// WhiteSpace is a verbatim run of interstitial blank lines.
type WhiteSpace string

func (Entry) isChangeLogEntry()      {}
func (WhiteSpace) isChangeLogEntry() {}

// Result is one element produced by ParseLog. Exactly one of Entry or Err
// is meaningful.
type Result struct {
	Entry Entry
	Err   *ParseError
}

// Kind classifies a ParseError.
type Kind int

const (
	// MalformedEntry means the grammar did not match at the current
	// position.
	MalformedEntry Kind = iota
	// InternalInconsistency means a pattern matched but produced an
	// unexpected number of submatches.
	InternalInconsistency
)

// ParseError describes why an entry could not be parsed.
type ParseError struct {
	Kind Kind
	// Line is the 1-based line on which the failing entry starts.
	Line   int
	Reason string
	// Text is the unparsed input starting at the failing entry.
	Text string
}
