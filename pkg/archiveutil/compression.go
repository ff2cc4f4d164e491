package archiveutil

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gz"
	CompressionXZ   Compression = "xz"
	CompressionZstd Compression = "zst"
)

// ParseCompression guesses the compression of a file from its name.
func ParseCompression(name string) Compression {
	switch filepath.Ext(name) {
	case ".gz":
		return CompressionGzip
	case ".xz":
		return CompressionXZ
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

var magic = []struct {
	c      Compression
	prefix []byte
}{
	{CompressionGzip, []byte{0x1f, 0x8b}},
	{CompressionXZ, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	{CompressionZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
}

// MagicLength is the number of leading bytes DetectCompression needs.
const MagicLength = 6

// DetectCompression identifies compressed data by its leading bytes. It is
// used when a file name gives no hint, such as for downloads served
// without an extension.
func DetectCompression(header []byte) Compression {
	for _, m := range magic {
		if bytes.HasPrefix(header, m.prefix) {
			return m.c
		}
	}
	return CompressionNone
}

func (c Compression) Extension() string {
	if c == CompressionNone {
		return ""
	}
	return "." + string(c)
}

// NewReader wraps r so that reading from it returns decompressed data.
func (c Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionXZ:
		reader, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(reader), nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
