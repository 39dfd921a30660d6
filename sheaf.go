package sheaf

import (
	"context"
	"log/slog"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/core"
)

// --- Types ---

// Note is a single text segment extracted from an archive.
type Note = core.Note

// Collection is an ordered list of notes.
type Collection = core.Collection

// Service loads, navigates and exports a collection.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring sheaf.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithArchiveReader replaces the format-sniffing archive reader.
func WithArchiveReader(r core.ArchiveReader) Option {
	return platform.WithArchiveReader(r)
}

// WithSegmenter replaces the default note segmenter.
func WithSegmenter(s core.Segmenter) Option {
	return platform.WithSegmenter(s)
}

// WithDelimiter sets the separator between notes inside a text file.
func WithDelimiter(delim string) Option {
	return platform.WithDelimiter(delim)
}

// WithIgnore hides archive entries matching doublestar patterns.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithCodec sets the default export format.
func WithCodec(c core.Codec) Option {
	return platform.WithCodec(c)
}

// WithSink sets where Save delivers the export.
func WithSink(s core.Sink) Option {
	return platform.WithSink(s)
}

// WithMaxFileSize bounds the size of a single archive entry.
func WithMaxFileSize(n int64) Option {
	return platform.WithMaxFileSize(n)
}

// --- Factories ---

// New creates an empty service.
func New(opts ...Option) (*Service, error) {
	return platform.New(opts...)
}

// Open creates a service and loads the archive or export file at path.
func Open(ctx context.Context, path string, opts ...Option) (*Service, error) {
	return platform.Open(ctx, path, opts...)
}
