package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
)

// DirSink delivers exports as files inside Dir, creating it when needed.
type DirSink struct {
	Dir    string
	Perm   os.FileMode
	Logger *slog.Logger

	mu        sync.Mutex
	delivered int
	last      string
	lastAt    *time.Time
}

// NewDirSink creates a sink writing into dir with 0644 files.
func NewDirSink(dir string, logger *slog.Logger) *DirSink {
	return &DirSink{Dir: dir, Perm: 0644, Logger: logger}
}

// Deliver implements core.Sink. name must be a plain file name.
func (s *DirSink) Deliver(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid export file name %q", name)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}
	target := filepath.Join(s.Dir, name)
	if err := writeFileAtomic(target, data, perm); err != nil {
		return err
	}

	now := time.Now()
	s.mu.Lock()
	s.delivered++
	s.last = target
	s.lastAt = &now
	s.mu.Unlock()

	if s.Logger != nil {
		s.Logger.Debug("export written", "path", target, "bytes", len(data))
	}
	return nil
}

// WriterSink delivers exports to a stream (e.g. stdout), ignoring the name.
type WriterSink struct {
	W io.Writer
}

// Deliver implements core.Sink.
func (s WriterSink) Deliver(ctx context.Context, name string, data []byte) error {
	if _, err := s.W.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(s.W, "\n")
	return err
}

var (
	_ core.Sink = (*DirSink)(nil)
	_ core.Sink = WriterSink{}
)
