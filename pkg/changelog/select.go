package changelog

import (
	"iter"
	"slices"

	"github.com/djcass44/debian-changes/pkg/debian"
)

// Options narrows down the entries of a changelog in the same way as the
// dpkg-parsechangelog flags of the same name.
type Options struct {
	// Since keeps entries strictly newer than this version.
	Since debian.Version
	// Until keeps entries strictly older than this version.
	Until debian.Version
	// Match keeps entries satisfying a relation such as "foo (>= 1.0)".
	Match *debian.Relation
	// Distribution keeps entries that target the release.
	Distribution debian.ReleaseName
	// Offset skips this many matching entries.
	Offset int
	// Count stops after this many entries. Zero means no limit.
	Count int
}

// Select filters seq. Changelogs are ordered most recent first, so the
// underlying sequence is not consumed past the first entry that is not
// newer than opts.Since. Errors pass through and end the sequence.
func Select(seq iter.Seq[Result], opts Options) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		var skipped, emitted int
		for r := range seq {
			if r.Err != nil {
				yield(r)
				return
			}
			e := r.Entry
			if !opts.Since.IsZero() && e.Version.Compare(opts.Since) <= 0 {
				return
			}
			if !opts.Until.IsZero() && e.Version.Compare(opts.Until) >= 0 {
				continue
			}
			if opts.Match != nil && !opts.Match.Satisfies(e.Package, e.Version.String()) {
				continue
			}
			if opts.Distribution != "" && !slices.Contains(e.Distributions, opts.Distribution) {
				continue
			}
			if skipped < opts.Offset {
				skipped++
				continue
			}
			if !yield(r) {
				return
			}
			emitted++
			if opts.Count > 0 && emitted >= opts.Count {
				return
			}
		}
	}
}
