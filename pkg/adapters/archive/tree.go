package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/sheaf/pkg/core"
)

// DefaultMaxFileSize bounds the decoded size of a single entry.
const DefaultMaxFileSize int64 = 64 << 20

var (
	errInvalidUTF8 = errors.New("content is not valid UTF-8")
	utf8BOM        = []byte("\xef\xbb\xbf")
)

type opener func() (io.ReadCloser, error)

type node struct {
	entry core.Entry
	size  int64
	open  opener
}

// Tree is an immutable arena of archive entries. Children are stored as
// index lists per directory path, in the order they were first seen.
type Tree struct {
	nodes    []node
	children map[string][]int
	index    map[string]int
	maxSize  int64
}

func newTree(maxSize int64) *Tree {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Tree{
		children: map[string][]int{"": nil},
		index:    make(map[string]int),
		maxSize:  maxSize,
	}
}

// cleanPath normalizes an archive member name. ok is false for names that
// are empty or escape the archive root.
func cleanPath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	p := path.Clean("/" + name)
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "", false
	}
	if strings.Contains(name, "..") {
		for _, seg := range strings.Split(name, "/") {
			if seg == ".." {
				return "", false
			}
		}
	}
	return p, true
}

func parentOf(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

// addDir registers a directory and any missing ancestors.
func (t *Tree) addDir(p string) {
	if p == "" {
		return
	}
	if _, ok := t.index[p]; ok {
		return
	}
	parent := parentOf(p)
	t.addDir(parent)

	t.index[p] = len(t.nodes)
	t.children[parent] = append(t.children[parent], len(t.nodes))
	t.children[p] = nil
	t.nodes = append(t.nodes, node{entry: core.Entry{Name: path.Base(p), Path: p, Dir: true}})
}

// addFile registers a file. A repeated path keeps its first position and
// takes the latest content.
func (t *Tree) addFile(p string, size int64, open opener) {
	if i, ok := t.index[p]; ok {
		if !t.nodes[i].entry.Dir {
			t.nodes[i].size = size
			t.nodes[i].open = open
		}
		return
	}
	parent := parentOf(p)
	t.addDir(parent)

	t.index[p] = len(t.nodes)
	t.children[parent] = append(t.children[parent], len(t.nodes))
	t.nodes = append(t.nodes, node{
		entry: core.Entry{Name: path.Base(p), Path: p},
		size:  size,
		open:  open,
	})
}

// Entries implements core.EntryTree.
func (t *Tree) Entries(dir string) []core.Entry {
	idx := t.children[dir]
	out := make([]core.Entry, len(idx))
	for i, n := range idx {
		out[i] = t.nodes[n].entry
	}
	return out
}

// Len returns the number of entries, directories included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// ReadText implements core.EntryTree. Content must be UTF-8; a leading
// byte order mark is dropped.
func (t *Tree) ReadText(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	i, ok := t.index[p]
	if !ok || t.nodes[i].entry.Dir {
		return "", &core.DecodeError{Path: p, Err: fs.ErrNotExist}
	}
	n := t.nodes[i]
	if n.size > t.maxSize {
		return "", &core.DecodeError{Path: p, Err: fmt.Errorf("entry is %d bytes, limit is %d", n.size, t.maxSize)}
	}

	rc, err := n.open()
	if err != nil {
		return "", &core.DecodeError{Path: p, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, t.maxSize+1))
	if err != nil {
		return "", &core.DecodeError{Path: p, Err: err}
	}
	if int64(len(data)) > t.maxSize {
		return "", &core.DecodeError{Path: p, Err: fmt.Errorf("entry exceeds limit of %d bytes", t.maxSize)}
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", &core.DecodeError{Path: p, Err: errInvalidUTF8}
	}
	return string(data), nil
}

var _ core.EntryTree = (*Tree)(nil)
