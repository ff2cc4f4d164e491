package archiveutil

import (
	"archive/tar"
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"chainguard.dev/apko/pkg/apk/fs"
	"github.com/blakesmith/ar"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func compress(t *testing.T, c Compression, data []byte) []byte {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch c {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionXZ:
		w, err = xz.NewWriter(&buf)
	case CompressionZstd:
		w, err = zstd.NewWriter(&buf)
	default:
		return data
	}
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func makeTar(t *testing.T, files map[string]string, links map[string]string) []byte {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for name, target := range links {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeSymlink, Linkname: target, Mode: 0777}))
	}
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeReg, Size: int64(len(body)), Mode: 0644}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func TestParseCompression(t *testing.T) {
	var cases = []struct {
		in  string
		out Compression
	}{
		{"changelog.Debian.gz", CompressionGzip},
		{"data.tar.xz", CompressionXZ},
		{"data.tar.zst", CompressionZstd},
		{"changelog", CompressionNone},
		{"data.tar", CompressionNone},
	}
	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			assert.EqualValues(t, tt.out, ParseCompression(tt.in))
		})
	}
	assert.EqualValues(t, ".xz", CompressionXZ.Extension())
	assert.EqualValues(t, "", CompressionNone.Extension())
}

func TestCompression_NewReader(t *testing.T) {
	data := []byte("foo (1.0) unstable; urgency=low\n")
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionXZ, CompressionZstd} {
		t.Run(string(c), func(t *testing.T) {
			r, err := c.NewReader(bytes.NewReader(compress(t, c, data)))
			require.NoError(t, err)
			defer r.Close()

			out, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.EqualValues(t, data, out)
		})
	}
}

func TestDetectCompression(t *testing.T) {
	data := []byte("foo (1.0) unstable; urgency=low\n")
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionXZ, CompressionZstd} {
		t.Run(string(c), func(t *testing.T) {
			assert.EqualValues(t, c, DetectCompression(compress(t, c, data)))
		})
	}
	assert.EqualValues(t, CompressionNone, DetectCompression(nil))
	assert.EqualValues(t, CompressionNone, DetectCompression([]byte{0x1f}))
}

func TestFindFile(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	archive := makeTar(t, map[string]string{
		"./usr/share/doc/foo/changelog.gz":        "upstream",
		"./usr/share/doc/foo/changelog.Debian.gz": "debian",
		"./usr/bin/foo":                           "binary",
	}, map[string]string{
		"./usr/share/doc/bar/changelog.Debian.gz": "../foo/changelog.Debian.gz",
	})

	hasSuffix := func(s string) func(string) bool {
		return func(name string) bool {
			return strings.HasSuffix(name, s)
		}
	}

	t.Run("first matcher wins", func(t *testing.T) {
		name, data, err := FindFile(ctx, bytes.NewReader(archive), hasSuffix("/changelog.Debian.gz"), hasSuffix("/changelog.gz"))
		require.NoError(t, err)
		assert.EqualValues(t, "usr/share/doc/foo/changelog.Debian.gz", name)
		assert.EqualValues(t, "debian", string(data))
	})
	t.Run("fallback", func(t *testing.T) {
		name, data, err := FindFile(ctx, bytes.NewReader(archive), hasSuffix("/NEWS.Debian.gz"), hasSuffix("/changelog.gz"))
		require.NoError(t, err)
		assert.EqualValues(t, "usr/share/doc/foo/changelog.gz", name)
		assert.EqualValues(t, "upstream", string(data))
	})
	t.Run("not found", func(t *testing.T) {
		_, _, err := FindFile(ctx, bytes.NewReader(archive), hasSuffix("/README"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnar(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	var buf bytes.Buffer
	w := ar.NewWriter(&buf)
	require.NoError(t, w.WriteGlobalHeader())
	body := []byte("2.0\n")
	require.NoError(t, w.WriteHeader(&ar.Header{Name: "debian-binary", Size: int64(len(body)), Mode: 0644, ModTime: time.Now()}))
	_, err := w.Write(body)
	require.NoError(t, err)

	rootfs := fs.NewMemFS()
	err = Unar(ctx, &buf, rootfs)
	assert.NoError(t, err)

	_, err = rootfs.Stat("/debian-binary")
	assert.NotErrorIs(t, err, os.ErrNotExist)

	data, err := rootfs.ReadFile("/debian-binary")
	require.NoError(t, err)
	assert.EqualValues(t, body, data)
}
