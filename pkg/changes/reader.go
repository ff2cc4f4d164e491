package changes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/djcass44/debian-changes/pkg/changelog"
	"github.com/djcass44/debian-changes/pkg/debian"
	"github.com/go-logr/logr"
	"pault.ag/go/debian/control"
)

var (
	ErrMissingChanges  = errors.New("changes field is missing or malformed")
	ErrMissingChecksum = errors.New("file is missing a checksum")
)

// Read loads a .changes file from disk. An OpenPGP clear-signature is
// removed but not verified.
func Read(ctx context.Context, path string) (*ChangesFile, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)
	log.V(1).Info("reading changes file")

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		log.Error(err, "failed to read changes file")
		return nil, err
	}
	c, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.Directory = filepath.Dir(path)
	return c, nil
}

// Parse decodes the contents of a .changes file. An OpenPGP clear-signature
// is removed but not verified.
func Parse(ctx context.Context, data []byte) (*ChangesFile, error) {
	log := logr.FromContextOrDiscard(ctx)

	// without a keyring the signature is stripped and not checked
	dec, err := control.NewDecoder(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("reading paragraph: %w", err)
	}
	var raw rawChanges
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding paragraph: %w", err)
	}
	log.V(2).Info("decoded changes paragraph", "source", raw.Source, "version", raw.Version, "files", len(raw.Files))

	entry, ok := changelog.ParseChangesBlock(raw.Changes)
	if !ok {
		return nil, ErrMissingChanges
	}

	files, err := mergeFiles(raw)
	if err != nil {
		return nil, err
	}

	// "Source: foo (1.2-1)" is used when the binary version differs
	source, _, _ := strings.Cut(strings.TrimSpace(raw.Source), " ")
	var release debian.ReleaseName
	if dists := debian.ParseReleaseNames(raw.Distribution); len(dists) > 0 {
		release = dists[0]
	}

	return &ChangesFile{
		Package:      source,
		Version:      debian.NewVersion(strings.TrimSpace(raw.Version)),
		Release:      release,
		Architecture: primaryArchitecture(raw.Architecture),
		Paragraph:    raw.Paragraph,
		Entry:        entry,
		Files:        files,
	}, nil
}

// primaryArchitecture picks the architecture used in the file name from
// the "Architecture" field, preferring a binary architecture over "all"
// and "source".
func primaryArchitecture(s string) string {
	arches := strings.Fields(s)
	for _, a := range arches {
		if a != "source" && a != "all" {
			return a
		}
	}
	for _, fallback := range []string{"all", "source"} {
		if slices.Contains(arches, fallback) {
			return fallback
		}
	}
	return ""
}

// mergeFiles joins the "Files" list with the checksum lists by file name.
func mergeFiles(raw rawChanges) ([]ChangedFileSpec, error) {
	sha1 := map[string]string{}
	for _, h := range raw.ChecksumsSha1 {
		sha1[h.Filename] = h.Hash
	}
	sha256 := map[string]string{}
	for _, h := range raw.ChecksumsSha256 {
		sha256[h.Filename] = h.Hash
	}

	out := make([]ChangedFileSpec, 0, len(raw.Files))
	for _, f := range raw.Files {
		spec := ChangedFileSpec{
			MD5:      f.Hash,
			SHA1:     sha1[f.Filename],
			SHA256:   sha256[f.Filename],
			Size:     f.Size,
			Section:  f.Component,
			Priority: f.Priority,
			Name:     f.Filename,
		}
		if spec.SHA1 == "" {
			return nil, fmt.Errorf("%w: %s (sha1)", ErrMissingChecksum, f.Filename)
		}
		if spec.SHA256 == "" {
			return nil, fmt.Errorf("%w: %s (sha256)", ErrMissingChecksum, f.Filename)
		}
		out = append(out, spec)
	}
	return out, nil
}
