package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/core"
)

func threeNotes() core.Collection {
	return core.Collection{
		{ID: 0, Title: "a.txt", Content: "one", Tags: []string{}},
		{ID: 1, Title: "a.txt", Content: "two", Tags: []string{}},
		{ID: 0, Title: "b.txt", Content: "three", Tags: []string{}},
	}
}

func TestStore_Empty(t *testing.T) {
	s := core.NewStore()
	assert.Equal(t, core.StateEmpty, s.State())

	assert.NotPanics(t, func() {
		s.Next()
		s.Previous()
	})
	assert.Equal(t, core.StateEmpty, s.State())

	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Cursor()
	assert.False(t, ok)
	assert.False(t, s.HasNext())
	assert.False(t, s.HasPrevious())
}

func TestStore_Clamping(t *testing.T) {
	s := core.NewStore()
	s.Load(threeNotes())
	require.Equal(t, core.StateLoaded, s.State())

	cursor, ok := s.Cursor()
	require.True(t, ok)
	assert.Equal(t, 0, cursor)

	s.Previous()
	cursor, _ = s.Cursor()
	assert.Equal(t, 0, cursor, "previous at 0 is a no-op")

	s.Next()
	s.Next()
	cursor, _ = s.Cursor()
	assert.Equal(t, 2, cursor)
	assert.False(t, s.HasNext())
	assert.True(t, s.HasPrevious())

	s.Next()
	cursor, _ = s.Cursor()
	assert.Equal(t, 2, cursor, "next at the end is a no-op")

	n, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "three", n.Content)
}

func TestStore_LoadResetsCursor(t *testing.T) {
	s := core.NewStore()
	s.Load(threeNotes())
	s.Next()
	s.Next()

	s.Load(core.Collection{{ID: 0, Title: "c.txt", Content: "only", Tags: []string{}}})
	cursor, ok := s.Cursor()
	require.True(t, ok)
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 1, s.Len())

	s.Load(core.Collection{})
	assert.Equal(t, core.StateEmpty, s.State())
	s.Next()
	assert.Equal(t, core.StateEmpty, s.State())
}

func TestStore_IsolatedFromCaller(t *testing.T) {
	c := threeNotes()
	s := core.NewStore()
	s.Load(c)

	c[0].Content = "mutated"
	c[0].Tags = append(c[0].Tags, "x")

	n, _ := s.Current()
	assert.Equal(t, "one", n.Content)
	assert.Empty(t, n.Tags)

	notes := s.Notes()
	notes[1].Content = "also mutated"
	assert.Equal(t, "two", s.Notes()[1].Content)
}

func TestStore_Stubs(t *testing.T) {
	s := core.NewStore()
	s.Load(threeNotes())

	assert.ErrorIs(t, s.Tag("work"), core.ErrNotImplemented)
	assert.ErrorIs(t, s.Edit("new"), core.ErrNotImplemented)
	assert.ErrorIs(t, s.Delete(), core.ErrNotImplemented)
	assert.Equal(t, threeNotes(), s.Notes())
}

func TestStore_ConcurrentReadsDuringLoad(t *testing.T) {
	s := core.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Load(threeNotes())
		}()
		go func() {
			defer wg.Done()
			s.Next()
			if cursor, ok := s.Cursor(); ok {
				assert.Less(t, cursor, 3)
			}
		}()
	}
	wg.Wait()
}
