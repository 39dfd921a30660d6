package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/aretw0/sheaf/pkg/core"
)

// ZipReader reads ZIP archives. Entry order follows the central directory.
type ZipReader struct {
	MaxFileSize int64
}

// Read implements core.ArchiveReader.
func (r ZipReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &core.DecodeError{Err: fmt.Errorf("invalid zip archive: %w", err)}
	}

	t := newTree(r.MaxFileSize)
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, ok := cleanPath(f.Name)
		if !ok {
			continue
		}
		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			t.addDir(p)
			continue
		}
		t.addFile(p, int64(f.UncompressedSize64), f.Open)
	}
	return t, nil
}

// ComponentType implements introspection.Component.
func (r ZipReader) ComponentType() string { return "zip-reader" }
