package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/sheaf/pkg/adapters/archive"
	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/adapters/fs"
	"github.com/aretw0/sheaf/pkg/core"
)

// SourceKind tells how a file is loaded into a service.
type SourceKind int

const (
	// SourceArchive is extracted with Upload.
	SourceArchive SourceKind = iota
	// SourceExport is decoded with Import.
	SourceExport
)

// Classify decides how to load a file. Interchange files are recognized by
// their extension in reg, everything else by sniffing the archive format.
func Classify(path string, data []byte, reg *codec.Registry) (SourceKind, core.Codec, error) {
	if c, ok := reg.Lookup(path); ok {
		return SourceExport, c, nil
	}
	if archive.Detect(data) != archive.FormatUnknown {
		return SourceArchive, nil, nil
	}
	return SourceArchive, nil, &core.DecodeError{
		Path: filepath.Base(path),
		Err:  fmt.Errorf("%w: not an archive or a known export", core.ErrUnknownFormat),
	}
}

// LoadFile reads path from disk and loads it into svc, extracting archives
// and importing exports.
func LoadFile(ctx context.Context, svc *core.Service, path string, reg *codec.Registry) error {
	if reg == nil {
		reg = codec.DefaultRegistry()
	}

	data, err := fs.ReadSource(path, 0)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	kind, c, err := Classify(path, data, reg)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	switch kind {
	case SourceExport:
		return svc.Import(ctx, name, data, c)
	default:
		return svc.Upload(ctx, name, data)
	}
}

// Open creates a service and loads path into it.
func Open(ctx context.Context, path string, opts ...Option) (*core.Service, error) {
	svc, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := LoadFile(ctx, svc, path, nil); err != nil {
		return nil, err
	}
	return svc, nil
}
