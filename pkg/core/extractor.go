package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// NoteExt is the extension of archive entries treated as note sources.
const NoteExt = ".txt"

// Extractor walks an EntryTree and turns every text file into notes.
type Extractor struct {
	segmenter Segmenter
	logger    *slog.Logger
}

// NewExtractor creates an Extractor. A nil segmenter means SplitSegmenter
// with the default delimiter.
func NewExtractor(segmenter Segmenter, logger *slog.Logger) *Extractor {
	if segmenter == nil {
		segmenter = SplitSegmenter{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{segmenter: segmenter, logger: logger}
}

// Extract returns the notes of every text file in tree, in traversal order:
// entries in the order the tree exposes them, then segments within each file.
//
// Files are decoded one at a time. A file that cannot be decoded aborts the
// whole extraction with a *DecodeError; no partial collection is returned.
func (x *Extractor) Extract(ctx context.Context, tree EntryTree) (Collection, error) {
	notes, err := x.walk(ctx, tree, "", "")
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = Collection{}
	}
	return notes, nil
}

// walk extracts the subtree rooted at dir. prefix is the title prefix of its
// children (the directory path plus a trailing '/').
func (x *Extractor) walk(ctx context.Context, tree EntryTree, dir, prefix string) (Collection, error) {
	var out Collection
	for _, e := range tree.Entries(dir) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		title := prefix + e.Name
		switch {
		case e.Dir:
			sub, err := x.walk(ctx, tree, e.Path, title+"/")
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)

		case strings.HasSuffix(title, NoteExt):
			text, err := tree.ReadText(ctx, e.Path)
			if err != nil {
				return nil, asDecodeError(e.Path, err)
			}
			notes := x.segmenter.Segment(title, text)
			x.logger.Debug("segmented file", "path", title, "notes", len(notes))
			out = append(out, notes...)

		default:
			x.logger.Debug("skipping non-text entry", "path", title)
		}
	}
	return out, nil
}

func asDecodeError(path string, err error) error {
	if errors.Is(err, ErrDecode) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &DecodeError{Path: path, Err: err}
}
