package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"chainguard.dev/apko/pkg/apk/fs"
	"github.com/djcass44/debian-changes/pkg/archiveutil"
	"github.com/djcass44/debian-changes/pkg/downloader"
	"github.com/go-logr/logr"
)

// dataMembers are the names a .deb may store its payload under, in the
// order they are tried.
var dataMembers = []string{
	"/data.tar.xz",
	"/data.tar.zst",
	"/data.tar.gz",
	"/data.tar",
}

type Opener struct {
	dl *downloader.Downloader
}

func NewOpener(cacheDir string) (*Opener, error) {
	dl, err := downloader.NewDownloader(cacheDir)
	if err != nil {
		return nil, err
	}
	return &Opener{dl: dl}, nil
}

// Open returns the changelog text referred to by uri. The uri may be a
// local path or an http(s) url pointing at a plain or compressed
// changelog, or at a binary package.
func (o *Opener) Open(ctx context.Context, uri string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("uri", uri)

	src := uri
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		if o.dl == nil {
			return "", fmt.Errorf("no downloader configured for remote uri: %s", uri)
		}
		dst, err := o.dl.Download(ctx, uri)
		if err != nil {
			return "", fmt.Errorf("downloading changelog: %w", err)
		}
		src = dst
	}
	log.V(1).Info("opening changelog", "path", src)

	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return Read(logr.NewContext(ctx, log), src, f)
}

// Read returns the changelog text contained in r. The name is used to
// decide how the content is stored.
func Read(ctx context.Context, name string, r io.Reader) (string, error) {
	if path.Ext(name) == ".deb" {
		return ReadPackage(ctx, r)
	}
	c := archiveutil.ParseCompression(name)
	if c == archiveutil.CompressionNone {
		br := bufio.NewReader(r)
		// a short read just means there is nothing to detect
		header, _ := br.Peek(archiveutil.MagicLength)
		c = archiveutil.DetectCompression(header)
		r = br
	}
	rc, err := c.NewReader(r)
	if err != nil {
		return "", fmt.Errorf("opening compressed changelog: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadPackage extracts the Debian changelog from a binary package. The
// changelog.Debian.gz of the package is preferred over an upstream
// changelog.gz.
func ReadPackage(ctx context.Context, r io.Reader) (string, error) {
	log := logr.FromContextOrDiscard(ctx)

	rootfs := fs.NewMemFS()
	if err := archiveutil.Unar(ctx, r, rootfs); err != nil {
		return "", fmt.Errorf("unpacking package: %w", err)
	}

	member, err := findDataMember(rootfs)
	if err != nil {
		return "", err
	}
	log.V(2).Info("reading package data", "member", member)

	f, err := rootfs.Open(member)
	if err != nil {
		return "", err
	}
	defer f.Close()

	tr, err := archiveutil.ParseCompression(member).NewReader(f)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", member, err)
	}
	defer tr.Close()

	name, data, err := archiveutil.FindFile(ctx, tr, isChangelog("changelog.Debian.gz"), isChangelog("changelog.gz"))
	if err != nil {
		return "", fmt.Errorf("locating changelog in package: %w", err)
	}
	log.V(1).Info("found changelog", "name", name)

	return Read(ctx, name, bytes.NewReader(data))
}

func findDataMember(rootfs fs.FullFS) (string, error) {
	for _, name := range dataMembers {
		if _, err := rootfs.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("package has no data member: %w", archiveutil.ErrNotFound)
}

// isChangelog matches usr/share/doc/<package>/<filename>.
func isChangelog(filename string) func(string) bool {
	return func(name string) bool {
		dir, file := path.Split(strings.TrimPrefix(name, "/"))
		return file == filename && path.Dir(path.Clean(dir)) == "usr/share/doc"
	}
}
