package changes

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/djcass44/debian-changes/pkg/changelog"
)

// Name returns the canonical file name, <package>_<version>_<arch>.changes.
func (c *ChangesFile) Name() string {
	return fmt.Sprintf("%s_%s_%s.changes", c.Package, c.Version.String(), c.Architecture)
}

// Path joins the directory the file was read from with its canonical name.
func (c *ChangesFile) Path() string {
	return filepath.Join(c.Directory, c.Name())
}

// String renders the file in the form used by the "Files" field:
// md5 size section priority name.
func (f ChangedFileSpec) String() string {
	return fmt.Sprintf("%s %d %s %s %s", f.MD5, f.Size, f.Section, f.Priority, f.Name)
}

// ChangesField renders an entry as the value of a "Changes" field. Every
// line is indented by one space and blank lines are written as ".".
func ChangesField(e changelog.Entry) string {
	header, _, _ := strings.Cut(e.String(), "\n")

	sb := strings.Builder{}
	sb.WriteString("\n ")
	sb.WriteString(header)
	sb.WriteString("\n .\n")
	details := strings.TrimRight(e.Details, "\n")
	if details == "" {
		return sb.String()
	}
	for _, line := range strings.Split(details, "\n") {
		if strings.TrimSpace(line) == "" {
			sb.WriteString(" .\n")
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
