package core_test

import (
	"context"
	"errors"
	"path"

	"github.com/aretw0/sheaf/pkg/core"
)

// fakeTree implements core.EntryTree in memory. Entries are listed in the
// order they are added, which lets tests pin non-alphabetical orders.
type fakeTree struct {
	children map[string][]core.Entry
	files    map[string]string
	broken   map[string]error
	reads    []string
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		children: make(map[string][]core.Entry),
		files:    make(map[string]string),
		broken:   make(map[string]error),
	}
}

func (t *fakeTree) dir(p string) *fakeTree {
	parent := path.Dir(p)
	if parent == "." {
		parent = ""
	}
	t.children[parent] = append(t.children[parent], core.Entry{Name: path.Base(p), Path: p, Dir: true})
	return t
}

func (t *fakeTree) file(p, content string) *fakeTree {
	parent := path.Dir(p)
	if parent == "." {
		parent = ""
	}
	t.children[parent] = append(t.children[parent], core.Entry{Name: path.Base(p), Path: p})
	t.files[p] = content
	return t
}

func (t *fakeTree) Entries(dir string) []core.Entry {
	return t.children[dir]
}

func (t *fakeTree) ReadText(ctx context.Context, p string) (string, error) {
	t.reads = append(t.reads, p)
	if err, ok := t.broken[p]; ok {
		return "", err
	}
	content, ok := t.files[p]
	if !ok {
		return "", errors.New("no such file")
	}
	return content, nil
}

// fakeReader hands out a prepared tree, or fails.
type fakeReader struct {
	tree core.EntryTree
	err  error
}

func (r fakeReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tree, nil
}

// memorySink records deliveries.
type memorySink struct {
	name string
	data []byte
}

func (s *memorySink) Deliver(ctx context.Context, name string, data []byte) error {
	s.name = name
	s.data = append([]byte(nil), data...)
	return nil
}
