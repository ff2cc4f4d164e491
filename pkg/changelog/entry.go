package changelog

import "strings"

// ParseEntry parses one entry from the front of text. On success it returns
// the entry and the text that follows it (after any trailing blank lines).
//
// Text holding nothing but whitespace returns ErrEmpty. Any other failure
// is a *ParseError.
func ParseEntry(text string) (Entry, string, error) {
	if strings.TrimSpace(text) == "" {
		return Entry{}, text, ErrEmpty
	}
	c := &cursor{text: text}
	entry, err := parseEntry(c)
	if err != nil {
		return Entry{}, text, err
	}
	return entry, text[c.pos:], nil
}

func parseEntry(c *cursor) (Entry, *ParseError) {
	c.skipBlank()
	start, startLine := c.pos, c.line+1
	fail := func(err *ParseError) *ParseError {
		err.Line = startLine
		err.Text = c.text[start:]
		return err
	}

	// header
	line, next, _ := c.peek()
	entry, err := parseHeader(line)
	if err != nil {
		return Entry{}, fail(err)
	}
	c.advance(next)
	c.skipBlank()

	// change details, up to the signature
	details := c.pos
	for {
		if c.eof() {
			return Entry{}, fail(&ParseError{
				Kind:   MalformedEntry,
				Reason: "missing signature line ' -- maintainer  date'",
			})
		}
		line, next, _ = c.peek()
		if isSignature(line) {
			break
		}
		// an unindented line starts the next entry
		if !isDetail(line) {
			return Entry{}, fail(&ParseError{
				Kind:   MalformedEntry,
				Reason: "missing signature line ' -- maintainer  date'",
			})
		}
		c.advance(next)
	}
	entry.Details = c.text[details:c.pos]

	// signature
	who, date, ok := splitSignature(line)
	if !ok {
		return Entry{}, fail(&ParseError{
			Kind:   MalformedEntry,
			Reason: "signature line has no double space between maintainer and date",
		})
	}
	entry.Who = who
	entry.Date = date
	c.advance(next)
	c.skipBlank()

	return entry, nil
}
