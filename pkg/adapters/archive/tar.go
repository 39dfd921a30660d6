package archive

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/aretw0/sheaf/pkg/core"
)

// Compression is the outer compression of a tar stream.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionXZ   Compression = "xz"
)

// DefaultMaxTotalSize bounds the bytes a TarReader buffers across all members.
const DefaultMaxTotalSize int64 = 512 << 20

// TarReader reads (optionally compressed) tar archives. Tar is sequential, so
// the contents of note files are buffered while the tree is built. Other
// members, and members over the size limit, are kept as entries that fail on
// ReadText.
type TarReader struct {
	Compression Compression
	MaxFileSize int64
	// MaxTotalSize bounds the buffered bytes of all note files together.
	// Zero means DefaultMaxTotalSize.
	MaxTotalSize int64
}

// Read implements core.ArchiveReader.
func (r TarReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	stream, closeFn, err := r.decompress(bytes.NewReader(data))
	if err != nil {
		return nil, &core.DecodeError{Err: fmt.Errorf("invalid %s stream: %w", r.Compression, err)}
	}
	defer closeFn()

	t := newTree(r.MaxFileSize)
	budget := r.MaxTotalSize
	if budget <= 0 {
		budget = DefaultMaxTotalSize
	}
	tr := tar.NewReader(stream)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &core.DecodeError{Err: fmt.Errorf("invalid tar archive: %w", err)}
		}

		p, ok := cleanPath(hdr.Name)
		if !ok {
			continue
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			t.addDir(p)
		case tar.TypeReg:
			if !strings.HasSuffix(p, core.NoteExt) {
				t.addFile(p, hdr.Size, notBuffered)
				continue
			}
			if hdr.Size > t.maxSize {
				t.addFile(p, hdr.Size, tooLarge(hdr.Size, t.maxSize))
				continue
			}
			if hdr.Size > budget {
				return nil, &core.DecodeError{Path: p, Err: fmt.Errorf("archive text exceeds limit of %d bytes", r.totalLimit())}
			}
			body, err := io.ReadAll(io.LimitReader(tr, hdr.Size))
			if err != nil {
				return nil, &core.DecodeError{Path: p, Err: err}
			}
			budget -= int64(len(body))
			t.addFile(p, int64(len(body)), buffered(body))
		}
	}
	return t, nil
}

func (r TarReader) decompress(src io.Reader) (io.Reader, func(), error) {
	noop := func() {}
	switch r.Compression {
	case CompressionNone, "":
		return src, noop, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(src)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case CompressionXZ:
		zr, err := xz.NewReader(src)
		if err != nil {
			return nil, nil, err
		}
		return zr, noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: compression %q", core.ErrUnknownFormat, r.Compression)
	}
}

// ComponentType implements introspection.Component.
func (r TarReader) ComponentType() string { return "tar-reader" }

func (r TarReader) totalLimit() int64 {
	if r.MaxTotalSize <= 0 {
		return DefaultMaxTotalSize
	}
	return r.MaxTotalSize
}

// notBuffered backs members that are not note files; their bytes are skipped.
func notBuffered() (io.ReadCloser, error) {
	return nil, errors.New("entry is not a note file and was not buffered")
}

func buffered(body []byte) opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
}

func tooLarge(size, limit int64) opener {
	return func() (io.ReadCloser, error) {
		return nil, fmt.Errorf("entry is %d bytes, limit is %d", size, limit)
	}
}
