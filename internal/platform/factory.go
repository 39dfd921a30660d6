package platform

import (
	"fmt"

	"github.com/aretw0/sheaf/pkg/adapters/archive"
	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/core"
)

// New assembles a service from the given options.
//
//	svc, err := sheaf.New(sheaf.WithIgnore("__MACOSX/**"))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.delimiter == "" && o.segmenter == nil {
		return nil, fmt.Errorf("note delimiter must not be empty")
	}
	if o.maxFileSize < 0 {
		return nil, fmt.Errorf("max file size must not be negative: %d", o.maxFileSize)
	}

	var reader core.ArchiveReader = archive.AutoReader{MaxFileSize: o.maxFileSize}
	if o.reader != nil {
		reader = o.reader
	}
	if len(o.ignore) > 0 {
		if err := archive.ValidatePatterns(o.ignore); err != nil {
			return nil, err
		}
		reader = archive.IgnoringReader{Reader: reader, Patterns: o.ignore}
		if o.logger != nil {
			o.logger.Debug("ignoring archive entries", "patterns", o.ignore)
		}
	}

	segmenter := o.segmenter
	if segmenter == nil {
		segmenter = core.SplitSegmenter{Delimiter: o.delimiter}
	}

	c := o.codec
	if c == nil {
		c = codec.JSON
	}

	return core.NewService(core.Config{
		Reader:    reader,
		Segmenter: segmenter,
		Codec:     c,
		Sink:      o.sink,
		Logger:    o.logger,
	}), nil
}
