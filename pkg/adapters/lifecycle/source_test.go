package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/adapters/fs"
)

func TestDropSource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drops := make(chan fs.Drop, 1)
	src := NewDropSource(drops)
	require.NoError(t, src.Start(ctx))

	drops <- fs.Drop{Path: "inbox/a.zip", Data: []byte("zip"), Fingerprint: 1}

	select {
	case e := <-src.Events():
		d, ok := e.(fs.Drop)
		require.True(t, ok)
		assert.Equal(t, "inbox/a.zip", d.Path)
		assert.Contains(t, e.String(), "inbox/a.zip")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for drop event")
	}

	close(drops)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "events channel should close after drops")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for events to close")
	}
}
