package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/core"
)

func newTestService(tree core.EntryTree, sink core.Sink) *core.Service {
	return core.NewService(core.Config{
		Reader: fakeReader{tree: tree},
		Codec:  codec.JSON,
		Sink:   sink,
	})
}

func TestService_UploadNavigateExport(t *testing.T) {
	sink := &memorySink{}
	svc := newTestService(newFakeTree().file("notes/x.txt", "alpha\n\nbeta\n\ngamma"), sink)
	ctx := context.Background()

	require.NoError(t, svc.Upload(ctx, "archive.zip", []byte("ignored by fake")))
	assert.Equal(t, 3, svc.Store().Len())

	n, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "alpha", n.Content)

	svc.Next()
	svc.Next()
	svc.Next()
	n, _ = svc.Current()
	assert.Equal(t, "gamma", n.Content)

	svc.Previous()
	n, _ = svc.Current()
	assert.Equal(t, "beta", n.Content)

	require.NoError(t, svc.Save(ctx))
	assert.Equal(t, core.ExportFileName, sink.name)

	imported, err := codec.JSON.Decode(sink.data)
	require.NoError(t, err)
	assert.Equal(t, svc.Store().Notes(), imported)
}

func TestService_FailedUploadKeepsState(t *testing.T) {
	ctx := context.Background()
	tree := newFakeTree().file("a.txt", "kept")
	svc := newTestService(tree, nil)
	require.NoError(t, svc.Upload(ctx, "first.zip", nil))

	tree.file("b.txt", "")
	tree.broken["b.txt"] = errors.New("bad bytes")
	err := svc.Upload(ctx, "second.zip", nil)
	assert.ErrorIs(t, err, core.ErrDecode)

	n, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "kept", n.Content)
	assert.Equal(t, "first.zip", svc.State().(core.ServiceState).Source)
}

func TestService_InvalidArchive(t *testing.T) {
	svc := core.NewService(core.Config{
		Reader: fakeReader{err: &core.DecodeError{Err: errors.New("not a zip")}},
		Codec:  codec.JSON,
	})
	err := svc.Upload(context.Background(), "junk.bin", []byte("junk"))
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.Equal(t, core.StateEmpty, svc.Store().State())
}

func TestService_ImportParseErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeTree(), nil)

	valid := []byte(`[{"id": 0, "title": "t.txt", "content": "c", "tags": ["x"]}]`)
	require.NoError(t, svc.Import(ctx, "good.json", valid, nil))
	require.Equal(t, 1, svc.Store().Len())

	err := svc.Import(ctx, "bad.json", []byte(`[{"id": 0,`), nil)
	assert.ErrorIs(t, err, core.ErrParse)

	n, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, n.Tags)
}

func TestService_ExportEmpty(t *testing.T) {
	svc := newTestService(newFakeTree(), nil)
	data, err := svc.Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	assert.ErrorIs(t, svc.Save(context.Background()), core.ErrNoSink)
}

// blockingReader parks inside Read until released, so a second load can
// observe the first one in flight.
type blockingReader struct {
	entered chan struct{}
	release chan struct{}
}

func (r blockingReader) Read(ctx context.Context, data []byte) (core.EntryTree, error) {
	close(r.entered)
	<-r.release
	return newFakeTree().file("a.txt", "a"), nil
}

func TestService_RejectsOverlappingLoads(t *testing.T) {
	reader := blockingReader{entered: make(chan struct{}), release: make(chan struct{})}
	svc := core.NewService(core.Config{Reader: reader, Codec: codec.JSON})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- svc.Upload(ctx, "slow.zip", nil) }()
	<-reader.entered

	assert.True(t, svc.State().(core.ServiceState).Busy)
	assert.ErrorIs(t, svc.Upload(ctx, "other.zip", nil), core.ErrBusy)
	assert.ErrorIs(t, svc.Import(ctx, "other.json", []byte("[]"), nil), core.ErrBusy)

	close(reader.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, svc.Store().Len())
}

func TestService_Introspection(t *testing.T) {
	svc := newTestService(newFakeTree().file("a.txt", "a\n\nb"), nil)
	require.NoError(t, svc.Upload(context.Background(), "notes.zip", nil))
	svc.Next()

	var intro introspection.Introspectable = svc
	state, ok := intro.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, core.StateLoaded, state.State)
	assert.Equal(t, 2, state.Notes)
	assert.Equal(t, 1, state.Cursor)
	assert.Equal(t, "notes.zip", state.Source)
	assert.Equal(t, "json", state.Format)
	assert.Equal(t, "service", svc.ComponentType())
}
