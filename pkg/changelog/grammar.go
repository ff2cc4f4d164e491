package changelog

import (
	"regexp"
	"strings"

	"github.com/djcass44/debian-changes/pkg/debian"
)

// regexpHeader matches a single header line, e.g.
//
//	haskell-regex-compat (0.92-3+seereason1~jaunty4) jaunty-seereason; urgency=low
var regexpHeader = regexp.MustCompile(`^(?P<package>[^ \t(]+)[ \t]*\((?P<version>[^)]*)\)[ \t]*(?P<distributions>[^;]*);[ \t]*urgency=(?P<urgency>.*)$`)

// signaturePrefix starts the trailer line of an entry. No detail line may
// begin with it.
const signaturePrefix = " -- "

// signatureSeparator divides the maintainer from the date.
const signatureSeparator = "  "

// cursor walks a buffer one line at a time.
type cursor struct {
	text string
	pos  int
	// line is the number of lines consumed so far
	line int
}

// peek returns the next line without its newline, the offset just past it
// and whether the line was newline terminated.
func (c *cursor) peek() (line string, next int, terminated bool) {
	rest := c.text[c.pos:]
	i := strings.IndexByte(rest, '\n')
	if i < 0 {
		return rest, len(c.text), false
	}
	return rest[:i], c.pos + i + 1, true
}

func (c *cursor) advance(next int) {
	c.pos = next
	c.line++
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.text)
}

// remaining reports whether anything other than whitespace is left.
func (c *cursor) remaining() bool {
	return strings.TrimSpace(c.text[c.pos:]) != ""
}

// skipBlank consumes a blank-run: newline terminated lines holding only
// horizontal whitespace.
func (c *cursor) skipBlank() {
	for !c.eof() {
		line, next, terminated := c.peek()
		if !terminated || !isBlank(line) {
			return
		}
		c.advance(next)
	}
}

func isBlank(line string) bool {
	return strings.Trim(line, " \t") == ""
}

// isDetail reports whether line may belong to the change details: it is
// blank or indented.
func isDetail(line string) bool {
	return isBlank(line) || line[0] == ' ' || line[0] == '\t'
}

func isSignature(line string) bool {
	return strings.HasPrefix(line, signaturePrefix)
}

// splitSignature extracts the maintainer and date from a signature line.
// The first double space ends the maintainer so that padded dates
// ("Mon,  1 Jun ...") stay intact.
func splitSignature(line string) (who, date string, ok bool) {
	return strings.Cut(strings.TrimPrefix(line, signaturePrefix), signatureSeparator)
}

// parseHeader matches a header line and fills in every field of the entry
// that the header carries.
func parseHeader(line string) (Entry, *ParseError) {
	matches := regexpHeader.FindStringSubmatch(line)
	if matches == nil {
		return Entry{}, &ParseError{
			Kind:   MalformedEntry,
			Reason: "expected header line 'package (version) distributions; urgency=value'",
		}
	}
	if len(matches) != regexpHeader.NumSubexp()+1 {
		return Entry{}, &ParseError{
			Kind:   InternalInconsistency,
			Reason: "header pattern produced an unexpected number of submatches",
		}
	}
	dists := debian.ParseReleaseNames(matches[regexpHeader.SubexpIndex("distributions")])
	if len(dists) == 0 {
		return Entry{}, &ParseError{
			Kind:   MalformedEntry,
			Reason: "header line names no distributions",
		}
	}
	return Entry{
		Package:       matches[regexpHeader.SubexpIndex("package")],
		Version:       debian.NewVersion(matches[regexpHeader.SubexpIndex("version")]),
		Distributions: dists,
		Urgency:       matches[regexpHeader.SubexpIndex("urgency")],
	}, nil
}
