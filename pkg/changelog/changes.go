package changelog

import "strings"

// ParseChangesBlock parses the "Changes" field of a .changes file. The
// field holds a single header followed by change details and never has a
// signature, so everything after the header is kept as the details.
//
// The second return value is false if text is not a header followed by a
// body. The returned entry has an empty Who and Date.
func ParseChangesBlock(text string) (Entry, bool) {
	c := &cursor{text: text}
	c.skipBlank()
	if c.eof() {
		return Entry{}, false
	}
	line, next, _ := c.peek()
	entry, err := parseHeader(strings.TrimLeft(line, " \t"))
	if err != nil {
		return Entry{}, false
	}
	c.advance(next)
	c.skipBlank()
	entry.Details = c.text[c.pos:]
	return entry, true
}
