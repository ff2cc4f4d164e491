package changes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// NewChangedFileSpec hashes the file at path and describes it the way a
// .changes file would.
func NewChangedFileSpec(path, section, priority string) (ChangedFileSpec, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return ChangedFileSpec{}, err
	}
	defer f.Close()

	hMD5 := md5.New()
	hSHA1 := sha1.New()
	hSHA256 := sha256.New()
	size, err := io.Copy(io.MultiWriter(hMD5, hSHA1, hSHA256), f)
	if err != nil {
		return ChangedFileSpec{}, err
	}
	return ChangedFileSpec{
		MD5:      hex.EncodeToString(hMD5.Sum(nil)),
		SHA1:     hex.EncodeToString(hSHA1.Sum(nil)),
		SHA256:   hex.EncodeToString(hSHA256.Sum(nil)),
		Size:     size,
		Section:  section,
		Priority: priority,
		Name:     filepath.Base(path),
	}, nil
}
