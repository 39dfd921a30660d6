package platform

import (
	"log/slog"

	"github.com/aretw0/sheaf/pkg/core"
)

// options holds the internal configuration for a sheaf service.
type options struct {
	logger      *slog.Logger
	reader      core.ArchiveReader
	segmenter   core.Segmenter
	delimiter   string
	ignore      []string
	codec       core.Codec
	sink        core.Sink
	maxFileSize int64
}

// Option defines a functional option for configuring sheaf.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		delimiter: core.DefaultDelimiter,
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithArchiveReader replaces the format-sniffing archive reader.
// Ignore patterns still apply on top of it.
func WithArchiveReader(r core.ArchiveReader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithSegmenter replaces the default delimiter based segmenter.
// When set, WithDelimiter has no effect.
func WithSegmenter(s core.Segmenter) Option {
	return func(o *options) {
		o.segmenter = s
	}
}

// WithDelimiter sets the separator between notes inside a text file.
// Defaults to a blank line ("\n\n").
func WithDelimiter(delim string) Option {
	return func(o *options) {
		o.delimiter = delim
	}
}

// WithIgnore hides archive entries matching any of the doublestar patterns,
// e.g. "__MACOSX/**". May be given more than once.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, patterns...)
	}
}

// WithCodec sets the format used by Save and by Export/Import when no codec is given.
// Defaults to JSON.
func WithCodec(c core.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithSink sets where Save delivers the export.
func WithSink(s core.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithMaxFileSize bounds the size of a single archive entry.
// Zero means the archive package default (64 MiB).
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		o.maxFileSize = n
	}
}
