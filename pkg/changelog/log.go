package changelog

import "iter"

// ParseLog returns a lazy sequence over the entries of a changelog, most
// recent first. Every range over the sequence parses text from the start.
//
// The sequence ends after the first entry that cannot be parsed; that
// failure is yielded as a Result carrying the error. Text holding only
// whitespace yields nothing.
func ParseLog(text string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		c := &cursor{text: text}
		for c.remaining() {
			entry, err := parseEntry(c)
			if err != nil {
				yield(Result{Err: err})
				return
			}
			if !yield(Result{Entry: entry}) {
				return
			}
		}
	}
}

// Entries parses the whole changelog, returning the first parse error if
// there is one.
func Entries(text string) ([]Entry, error) {
	return Collect(ParseLog(text))
}

// Latest returns the most recent entry without parsing the rest of the
// changelog.
func Latest(text string) (Entry, error) {
	for r := range ParseLog(text) {
		if r.Err != nil {
			return Entry{}, r.Err
		}
		return r.Entry, nil
	}
	return Entry{}, ErrEmpty
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq[Result]) ([]Entry, error) {
	var out []Entry
	for r := range seq {
		if r.Err != nil {
			return out, r.Err
		}
		out = append(out, r.Entry)
	}
	return out, nil
}
