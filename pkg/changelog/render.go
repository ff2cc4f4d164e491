package changelog

import (
	"io"
	"strings"
)

// String renders the entry in the canonical changelog form. The details are
// written as they are, so they should already be indented and newline
// terminated.
func (e Entry) String() string {
	sb := strings.Builder{}
	sb.WriteString(e.Package)
	sb.WriteString(" (")
	sb.WriteString(e.Version.String())
	sb.WriteString(")")
	for _, d := range e.Distributions {
		sb.WriteString(" ")
		sb.WriteString(d.String())
	}
	sb.WriteString("; urgency=")
	sb.WriteString(e.Urgency)
	sb.WriteString("\n\n")
	sb.WriteString(e.Details)
	sb.WriteString(signaturePrefix)
	sb.WriteString(e.Who)
	sb.WriteString(signatureSeparator)
	sb.WriteString(e.Date)
	sb.WriteString("\n\n")
	return sb.String()
}

func (w WhiteSpace) String() string {
	return string(w)
}

// RenderLog writes entries one after another.
func RenderLog(w io.Writer, entries []ChangeLogEntry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatDetails turns a list of changes into an indented details block,
// one bullet per change. Continuation lines are aligned under the bullet
// text.
func FormatDetails(changes []string) string {
	if len(changes) == 0 {
		return ""
	}
	sb := strings.Builder{}
	for _, c := range changes {
		for i, line := range strings.Split(strings.TrimRight(c, "\n"), "\n") {
			switch {
			case i == 0:
				sb.WriteString("  * ")
			case strings.TrimSpace(line) == "":
				sb.WriteString("\n")
				continue
			default:
				sb.WriteString("    ")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
