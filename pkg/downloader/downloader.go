package downloader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/hashicorp/go-getter"
)

func NewDownloader(cacheDir string) (*Downloader, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	return &Downloader{cacheDir: cacheDir}, nil
}

// Download fetches src into the cache directory and returns the local
// path. Files already in the cache are not downloaded again.
func (d *Downloader) Download(ctx context.Context, src string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("src", src)

	dst, err := d.Path(src)
	if err != nil {
		log.Error(err, "failed to parse url")
		return "", err
	}
	if _, err := os.Stat(dst); err == nil {
		log.V(1).Info("using cached file", "dst", dst)
		return dst, nil
	}
	log.Info("downloading file")

	// download to a temporary name so that an interrupted download
	// never looks like a cache hit
	tmp := fmt.Sprintf("%s.%s.part", dst, uuid.NewString())
	log.V(1).Info("preparing to download file", "dst", dst, "tmp", tmp)

	client := &getter.Client{
		Ctx:             ctx,
		Src:             src,
		Dst:             tmp,
		Mode:            getter.ClientModeFile,
		DisableSymlinks: true,
	}
	if err := client.Get(); err != nil {
		log.Error(err, "failed to download file")
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dst); err != nil {
		log.Error(err, "failed to move download into the cache", "dst", dst)
		_ = os.Remove(tmp)
		return "", err
	}
	return dst, nil
}

// Path returns the location in the cache that src is downloaded to. The
// file name is kept so that the extension can still be used to detect the
// file type.
func (d *Downloader) Path(src string) (string, error) {
	uri, err := url.Parse(src)
	if err != nil {
		return "", err
	}
	name := filepath.Base(uri.Path)
	if name == "." || name == "/" {
		name = "index"
	}
	return filepath.Join(d.cacheDir, HashString(src)+"-"+name), nil
}

// CacheDir returns the directory downloads are stored in.
func (d *Downloader) CacheDir() string {
	return d.cacheDir
}
