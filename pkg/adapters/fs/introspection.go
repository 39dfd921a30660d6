package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// SinkState exposes internal state for observability.
type SinkState struct {
	Dir         string     `json:"dir"`
	Delivered   int        `json:"delivered"`
	LastPath    string     `json:"last_path,omitempty"`
	LastWritten *time.Time `json:"last_written,omitempty"`
}

// State implements introspection.Introspectable.
func (s *DirSink) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SinkState{
		Dir:         s.Dir,
		Delivered:   s.delivered,
		LastPath:    s.last,
		LastWritten: s.lastAt,
	}
}

// ComponentType implements introspection.Component.
func (s *DirSink) ComponentType() string {
	return "dir-sink"
}

var _ introspection.Introspectable = (*DirSink)(nil)
var _ introspection.Component = (*DirSink)(nil)
