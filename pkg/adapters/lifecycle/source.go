package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/sheaf/pkg/adapters/fs"
)

type dropSource struct {
	drops <-chan fs.Drop
	out   chan lifecycle.Event
}

// NewDropSource creates a lifecycle.Source that emits inbox drops.
// Every event it emits is an fs.Drop.
func NewDropSource(drops <-chan fs.Drop) lifecycle.Source {
	return &dropSource{
		drops: drops,
		out:   make(chan lifecycle.Event),
	}
}

func (s *dropSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start bridges the drop channel until ctx is done or drops is closed,
// then closes Events.
func (s *dropSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case d, ok := <-s.drops:
				if !ok {
					return nil
				}
				select {
				case s.out <- d:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
