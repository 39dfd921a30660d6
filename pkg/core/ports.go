package core

import "context"

// Entry is a directory or file inside an archive.
type Entry struct {
	// Name is the last path segment.
	Name string
	// Path is the full archive-relative path, '/'-separated, without a trailing slash.
	Path string
	Dir  bool
}

// EntryTree is the decoded directory/file structure of an archive.
// Implementations must be immutable once returned by an ArchiveReader.
type EntryTree interface {
	// Entries returns the children of dir ("" is the root) in the archive's
	// iteration order.
	Entries(dir string) []Entry

	// ReadText returns the decoded text of the file at path.
	ReadText(ctx context.Context, path string) (string, error)
}

// ArchiveReader decompresses raw archive bytes into an EntryTree.
// Bytes that are not a valid archive yield a *DecodeError.
type ArchiveReader interface {
	Read(ctx context.Context, data []byte) (EntryTree, error)
}

// Codec serializes a Collection to an interchange format and back.
// Decode(Encode(c)) must equal c field for field.
type Codec interface {
	// Name identifies the format (e.g. "json").
	Name() string
	Encode(c Collection) ([]byte, error)
	// Decode returns a *ParseError when data is not well-formed.
	Decode(data []byte) (Collection, error)
}

// Sink delivers exported bytes to the user (a download, a file, stdout).
type Sink interface {
	Deliver(ctx context.Context, name string, data []byte) error
}
