package changelog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty                 = errors.New("changelog text is empty")
	ErrMalformedEntry        = errors.New("malformed changelog entry")
	ErrInternalInconsistency = errors.New("internal inconsistency in changelog grammar")
)

func (k Kind) String() string {
	switch k {
	case MalformedEntry:
		return "MalformedEntry"
	case InternalInconsistency:
		return "InternalInconsistency"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.sentinel(), e.Line, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ParseError) sentinel() error {
	if e.Kind == InternalInconsistency {
		return ErrInternalInconsistency
	}
	return ErrMalformedEntry
}

// Messages returns the diagnostic as a list of lines: a summary followed by
// the first line of the text that could not be parsed.
func (e *ParseError) Messages() []string {
	out := []string{e.Error()}
	first, _, _ := strings.Cut(strings.TrimLeft(e.Text, " \t\n"), "\n")
	if first != "" {
		out = append(out, first)
	}
	return out
}
