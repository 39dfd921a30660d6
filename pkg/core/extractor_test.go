package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/core"
)

func contents(c core.Collection) []string {
	out := make([]string, len(c))
	for i, n := range c {
		out[i] = n.Content
	}
	return out
}

func TestExtractor_TraversalOrder(t *testing.T) {
	tree := newFakeTree().
		dir("b").
		file("b/one.txt", "from b").
		dir("a").
		file("a/two.txt", "from a")

	notes, err := core.NewExtractor(nil, nil).Extract(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"from b", "from a"}, contents(notes))
	assert.Equal(t, "b/one.txt", notes[0].Title)
	assert.Equal(t, "a/two.txt", notes[1].Title)
}

func TestExtractor_Nested(t *testing.T) {
	tree := newFakeTree().
		file("top.txt", "t1\n\nt2").
		dir("notes").
		dir("notes/2023").
		file("notes/2023/jan.txt", "j1\n\nj2\n\nj3").
		file("notes/readme.md", "ignored\n\nignored").
		file("notes/last.txt", "l1")

	notes, err := core.NewExtractor(nil, nil).Extract(context.Background(), tree)
	require.NoError(t, err)

	assert.Equal(t, []string{"t1", "t2", "j1", "j2", "j3", "l1"}, contents(notes))

	// ids restart per file
	ids := make([]int, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	assert.Equal(t, []int{0, 1, 0, 1, 2, 0}, ids)
	assert.Equal(t, "notes/2023/jan.txt", notes[2].Title)
	assert.NotContains(t, tree.reads, "notes/readme.md")
}

func TestExtractor_NonTextIgnored(t *testing.T) {
	tree := newFakeTree().
		file("readme.md", "# readme").
		file("note.txt", "hello")

	notes, err := core.NewExtractor(nil, nil).Extract(context.Background(), tree)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "note.txt", notes[0].Title)
}

func TestExtractor_EmptyTree(t *testing.T) {
	notes, err := core.NewExtractor(nil, nil).Extract(context.Background(), newFakeTree())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestExtractor_DecodeFailureAborts(t *testing.T) {
	tree := newFakeTree().
		file("good.txt", "fine").
		file("bad.txt", "").
		file("after.txt", "never read")
	tree.broken["bad.txt"] = errors.New("corrupt entry")

	notes, err := core.NewExtractor(nil, nil).Extract(context.Background(), tree)
	require.Error(t, err)
	assert.Nil(t, notes)
	assert.ErrorIs(t, err, core.ErrDecode)

	var decodeErr *core.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "bad.txt", decodeErr.Path)
	assert.NotContains(t, tree.reads, "after.txt")
}

func TestExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := core.NewExtractor(nil, nil).Extract(ctx, newFakeTree().file("a.txt", "a"))
	assert.ErrorIs(t, err, context.Canceled)
}
