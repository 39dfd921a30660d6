package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewDirSink(dir, nil)
	ctx := context.Background()

	require.NoError(t, sink.Deliver(ctx, "textFilesData.json", []byte(`[]`)))

	got, err := os.ReadFile(filepath.Join(dir, "textFilesData.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	state, ok := sink.State().(SinkState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Delivered)
	assert.Equal(t, filepath.Join(dir, "textFilesData.json"), state.LastPath)
	assert.NotNil(t, state.LastWritten)
	assert.Equal(t, "dir-sink", sink.ComponentType())
}

func TestDirSink_RejectsPaths(t *testing.T) {
	sink := NewDirSink(t.TempDir(), nil)
	ctx := context.Background()

	for _, name := range []string{"", "../escape.json", "sub/file.json", ".hidden"} {
		assert.Error(t, sink.Deliver(ctx, name, []byte("x")), "name %q", name)
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf}.Deliver(context.Background(), "ignored.json", []byte("[]")))
	assert.Equal(t, "[]\n", buf.String())
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.zip")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	data, err := ReadSource(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))

	_, err = ReadSource(path, 5)
	assert.Error(t, err)

	_, err = ReadSource(dir, 0)
	assert.Error(t, err)

	_, err = ReadSource(filepath.Join(dir, "missing.zip"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
