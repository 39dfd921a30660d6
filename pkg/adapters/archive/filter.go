package archive

import (
	"context"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/sheaf/pkg/core"
)

// ValidatePatterns reports the first malformed doublestar pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// Ignore hides the entries of tree whose path matches any of the doublestar
// patterns (e.g. "__MACOSX/**"). A hidden directory hides its subtree.
func Ignore(tree core.EntryTree, patterns ...string) (core.EntryTree, error) {
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return tree, nil
	}
	return &filteredTree{tree: tree, patterns: patterns}, nil
}

type filteredTree struct {
	tree     core.EntryTree
	patterns []string
}

func (f *filteredTree) ignored(e core.Entry) bool {
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, e.Path); ok {
			return true
		}
		if e.Dir {
			if ok, _ := doublestar.Match(p, e.Path+"/"); ok {
				return true
			}
		}
	}
	return false
}

func (f *filteredTree) Entries(dir string) []core.Entry {
	all := f.tree.Entries(dir)
	out := make([]core.Entry, 0, len(all))
	for _, e := range all {
		if !f.ignored(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f *filteredTree) ReadText(ctx context.Context, path string) (string, error) {
	return f.tree.ReadText(ctx, path)
}

// IgnoringReader wraps a reader so every tree it returns is filtered.
type IgnoringReader struct {
	Reader   core.ArchiveReader
	Patterns []string
}

// Read implements core.ArchiveReader.
func (r IgnoringReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	tree, err := r.Reader.Read(ctx, data)
	if err != nil {
		return nil, err
	}
	return Ignore(tree, r.Patterns...)
}

// ComponentType reports the type of the wrapped reader.
func (r IgnoringReader) ComponentType() string {
	if comp, ok := r.Reader.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "archive"
}
