package archiveutil

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chainguard.dev/apko/pkg/apk/fs"
	"github.com/blakesmith/ar"
	"github.com/go-logr/logr"
)

// Unar expands an ar archive (such as a .deb) into the given filesystem.
func Unar(ctx context.Context, r io.Reader, rootfs fs.FullFS) error {
	log := logr.FromContextOrDiscard(ctx)
	tr := ar.NewReader(r)

	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return err
		case header == nil:
			continue
		}

		target := filepath.Clean("/" + strings.TrimSuffix(header.Name, "/"))

		log.V(5).Info("creating file", "target", target, "mode", header.Mode)
		f, err := rootfs.OpenFile(target, os.O_CREATE|os.O_RDWR, os.FileMode(header.Mode))
		if err != nil {
			log.Error(err, "failed to open file", "target", target)
			return err
		}

		if _, err := io.Copy(f, tr); err != nil {
			log.Error(err, "failed to extract file", "target", target)
			_ = f.Close()
			return err
		}
		_ = f.Close()
	}
}
