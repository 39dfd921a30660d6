package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/core"
)

func TestSelectNotes(t *testing.T) {
	notes := core.Collection{
		{ID: 0, Title: "a.txt", Content: "alpha", Tags: []string{}},
		{ID: 1, Title: "a.txt", Content: "beta", Tags: []string{}},
	}

	all, err := selectNotes(notes, -1)
	require.NoError(t, err)
	assert.Equal(t, notes, all)

	one, err := selectNotes(notes, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{notes[1]}, one)

	for _, index := range []int{2, -2, -5} {
		_, err := selectNotes(notes, index)
		assert.Error(t, err, "index %d", index)
	}
}
