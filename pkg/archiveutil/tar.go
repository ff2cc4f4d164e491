package archiveutil

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

var ErrNotFound = errors.New("file not found in archive")

// FindFile scans a tar archive and returns the contents of the first
// regular file for which each matcher, tried in order, returns true. Links
// are skipped since their target may live in another package.
func FindFile(ctx context.Context, r io.Reader, matchers ...func(name string) bool) (string, []byte, error) {
	log := logr.FromContextOrDiscard(ctx)
	tr := tar.NewReader(r)

	found := make([][]byte, len(matchers))
	names := make([]string, len(matchers))
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Error(err, "failed to read file from archive")
			return "", nil, err
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		name := strings.TrimPrefix(header.Name, "./")
		for i, match := range matchers {
			if found[i] != nil || !match(name) {
				continue
			}
			log.V(4).Info("found matching file", "name", name, "size", header.Size)
			data, err := io.ReadAll(tr)
			if err != nil {
				log.Error(err, "failed to extract file", "name", name)
				return "", nil, err
			}
			found[i] = data
			names[i] = name
			break
		}
		// the best match can't get any better
		if len(found) > 0 && found[0] != nil {
			break
		}
	}
	for i := range found {
		if found[i] != nil {
			return names[i], found[i], nil
		}
	}
	return "", nil, ErrNotFound
}
