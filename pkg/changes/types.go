package changes

import (
	"github.com/djcass44/debian-changes/pkg/changelog"
	"github.com/djcass44/debian-changes/pkg/debian"
	"pault.ag/go/debian/control"
)

// ChangedFileSpec is one file listed by a .changes file.
type ChangedFileSpec struct {
	MD5      string `json:"md5"`
	SHA1     string `json:"sha1"`
	SHA256   string `json:"sha256"`
	Size     int64  `json:"size"`
	Section  string `json:"section"`
	Priority string `json:"priority"`
	Name     string `json:"name"`
}

// ChangesFile is the build result described by a .changes file.
type ChangesFile struct {
	Directory    string             `json:"directory"`
	Package      string             `json:"package"`
	Version      debian.Version     `json:"version"`
	Release      debian.ReleaseName `json:"release"`
	Architecture string             `json:"architecture"`
	// Paragraph holds every field of the file as it was read.
	Paragraph control.Paragraph `json:"-"`
	Entry     changelog.Entry   `json:"entry"`
	Files     []ChangedFileSpec `json:"files"`
}

// rawChanges is the subset of fields decoded from the control paragraph.
// The embedded Paragraph keeps every field, including the ones not modelled
// here.
type rawChanges struct {
	control.Paragraph

	Source          string
	Version         string
	Distribution    string
	Architecture    string
	Changes         string
	Files           []control.FileListChangesFileHash `delim:"\n" strip:"\n\r\t "`
	ChecksumsSha1   []control.SHA1FileHash            `control:"Checksums-Sha1" delim:"\n" strip:"\n\r\t "`
	ChecksumsSha256 []control.SHA256FileHash          `control:"Checksums-Sha256" delim:"\n" strip:"\n\r\t "`
}
