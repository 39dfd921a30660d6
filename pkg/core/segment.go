package core

import "strings"

// DefaultDelimiter separates notes inside a text file: a blank line.
const DefaultDelimiter = "\n\n"

// Segmenter splits the text of one file into notes.
type Segmenter interface {
	Segment(path, content string) []Note
}

// SplitSegmenter splits content on a fixed delimiter.
//
// Segments that are exactly empty are dropped and consume no ID. Nothing is
// trimmed: surviving segments keep their leading/trailing whitespace and any
// single newlines.
type SplitSegmenter struct {
	// Delimiter defaults to DefaultDelimiter when empty.
	Delimiter string
}

// Segment implements Segmenter.
func (s SplitSegmenter) Segment(path, content string) []Note {
	delim := s.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}

	parts := strings.Split(content, delim)
	notes := make([]Note, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		notes = append(notes, Note{
			ID:      len(notes),
			Title:   path,
			Content: part,
			Tags:    []string{},
		})
	}
	return notes
}
