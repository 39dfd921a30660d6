package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	State      StoreState `json:"state"`
	Notes      int        `json:"notes"`
	Cursor     int        `json:"cursor"`
	Busy       bool       `json:"busy"`
	Source     string     `json:"source,omitempty"`
	Format     string     `json:"format,omitempty"`
	ReaderType string     `json:"reader_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()

	readerType := "none"
	if s.reader != nil {
		readerType = "archive"
		if comp, ok := s.reader.(introspection.Component); ok {
			readerType = comp.ComponentType()
		}
	}

	format := ""
	if s.codec != nil {
		format = s.codec.Name()
	}

	cursor, _ := s.store.Cursor()
	return ServiceState{
		State:      s.store.State(),
		Notes:      s.store.Len(),
		Cursor:     cursor,
		Busy:       s.busy.Load(),
		Source:     source,
		Format:     format,
		ReaderType: readerType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
