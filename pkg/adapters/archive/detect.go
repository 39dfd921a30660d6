package archive

import (
	"bytes"
	"context"
	"errors"

	"github.com/aretw0/sheaf/pkg/core"
)

// Format is a recognized archive container.
type Format string

const (
	FormatUnknown Format = ""
	FormatZip     Format = "zip"
	FormatTar     Format = "tar"
	FormatTarGzip Format = "tar.gz"
	FormatTarZstd Format = "tar.zst"
	FormatTarXZ   Format = "tar.xz"
)

var (
	magicZip      = []byte("PK\x03\x04")
	magicZipEmpty = []byte("PK\x05\x06")
	magicGzip     = []byte{0x1f, 0x8b}
	magicZstd     = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXZ       = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicUstar    = []byte("ustar")
)

// Detect sniffs the container format from the leading bytes.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZip), bytes.HasPrefix(data, magicZipEmpty):
		return FormatZip
	case bytes.HasPrefix(data, magicGzip):
		return FormatTarGzip
	case bytes.HasPrefix(data, magicZstd):
		return FormatTarZstd
	case bytes.HasPrefix(data, magicXZ):
		return FormatTarXZ
	case len(data) >= 262 && bytes.Equal(data[257:262], magicUstar):
		return FormatTar
	}
	return FormatUnknown
}

// AutoReader dispatches to ZipReader or TarReader based on Detect.
type AutoReader struct {
	MaxFileSize int64
	// MaxTotalSize is passed to TarReader.
	MaxTotalSize int64
}

// Read implements core.ArchiveReader.
func (r AutoReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	switch Detect(data) {
	case FormatZip:
		return ZipReader{MaxFileSize: r.MaxFileSize}.Read(ctx, data)
	case FormatTar:
		return r.tar(CompressionNone).Read(ctx, data)
	case FormatTarGzip:
		return r.tar(CompressionGzip).Read(ctx, data)
	case FormatTarZstd:
		return r.tar(CompressionZstd).Read(ctx, data)
	case FormatTarXZ:
		return r.tar(CompressionXZ).Read(ctx, data)
	}
	return nil, &core.DecodeError{Err: errors.Join(core.ErrUnknownFormat, errors.New("not a zip or tar archive"))}
}

func (r AutoReader) tar(c Compression) TarReader {
	return TarReader{Compression: c, MaxFileSize: r.MaxFileSize, MaxTotalSize: r.MaxTotalSize}
}

// ComponentType implements introspection.Component.
func (r AutoReader) ComponentType() string { return "auto-reader" }
