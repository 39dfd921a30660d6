package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/zeebo/xxh3"
)

// DefaultInboxPattern matches the archive names the inbox picks up.
const DefaultInboxPattern = "*.{zip,tar,tgz,tar.gz,tzst,tar.zst,txz,tar.xz}"

// Drop is an archive that landed in the inbox and settled.
type Drop struct {
	Path        string
	Data        []byte
	Fingerprint uint64
}

func (d Drop) String() string {
	return fmt.Sprintf("drop %s (%d bytes, %016x)", d.Path, len(d.Data), d.Fingerprint)
}

// Fingerprints remembers the content hashes of processed drops. It is shared
// between inbox instances so a restarted watcher does not replay old files.
type Fingerprints struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

// NewFingerprints returns an empty set.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{seen: make(map[uint64]struct{})}
}

// Add records h and reports whether it was new.
func (f *Fingerprints) Add(h uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seen[h]; ok {
		return false
	}
	f.seen[h] = struct{}{}
	return true
}

// Len returns the number of recorded fingerprints.
func (f *Fingerprints) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

// InboxConfig configures an Inbox.
type InboxConfig struct {
	Dir string
	// Pattern is a doublestar pattern matched against file base names.
	Pattern string
	// Debounce is how long a file must stay quiet before it is emitted.
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Inbox watches a directory and emits archives dropped into it. Existing
// files are emitted on start. Identical contents are emitted once.
type Inbox struct {
	*worker.BaseWorker
	config  InboxConfig
	drops   chan<- Drop
	seen    *Fingerprints
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
}

// NewInbox creates an inbox worker sending to drops. seen may be nil.
func NewInbox(cfg InboxConfig, drops chan<- Drop, seen *Fingerprints) (*Inbox, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("inbox directory is required")
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultInboxPattern
	}
	if !doublestar.ValidatePattern(cfg.Pattern) {
		return nil, fmt.Errorf("invalid inbox pattern %q", cfg.Pattern)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if seen == nil {
		seen = NewFingerprints()
	}
	return &Inbox{
		BaseWorker: worker.NewBaseWorker("inbox-watcher"),
		config:     cfg,
		drops:      drops,
		seen:       seen,
	}, nil
}

func (w *Inbox) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("inbox already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.config.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.config.Dir, err)
	}
	w.watcher = watcher

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *Inbox) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *Inbox) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"dir":               w.config.Dir,
			"pattern":           w.config.Pattern,
		}
	})
}

// Matches reports whether a file name is an inbox candidate.
func (w *Inbox) Matches(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ok, _ := doublestar.Match(w.config.Pattern, base)
	return ok
}

func (w *Inbox) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("inbox panic: %v", recovered)
			if w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.config.Logger.Error("inbox panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.config.Logger.Error("inbox panic", "error", err)
			}
		}
	}()
	defer w.watcher.Close()

	pending := make(map[string]time.Time)
	w.scanExisting(pending)

	tick := w.config.Debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.Matches(event.Name) {
				continue
			}
			w.config.Logger.Debug("inbox event", "name", event.Name, "op", event.Op.String())
			pending[event.Name] = time.Now().Add(w.config.Debounce)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.config.Logger.Error("fsnotify error", "error", wErr)
			if w.config.ErrorHandler != nil {
				w.config.ErrorHandler(wErr)
			}

		case now := <-ticker.C:
			for path, due := range pending {
				if now.Before(due) {
					continue
				}
				delete(pending, path)
				w.emit(ctx, path)
			}
		}
	}
}

func (w *Inbox) scanExisting(pending map[string]time.Time) {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		w.config.Logger.Warn("inbox scan failed", "dir", w.config.Dir, "error", err)
		return
	}
	now := time.Now()
	for _, e := range entries {
		if e.IsDir() || !w.Matches(e.Name()) {
			continue
		}
		pending[filepath.Join(w.config.Dir, e.Name())] = now
	}
}

func (w *Inbox) emit(ctx context.Context, path string) {
	data, err := ReadSource(path, 0)
	if err != nil {
		// Removed or renamed before it settled.
		w.config.Logger.Debug("inbox file unreadable", "path", path, "error", err)
		return
	}

	fp := xxh3.Hash(data)
	if !w.seen.Add(fp) {
		w.config.Logger.Debug("inbox file already processed", "path", path, "fingerprint", fmt.Sprintf("%016x", fp))
		return
	}

	select {
	case w.drops <- Drop{Path: path, Data: data, Fingerprint: fp}:
	case <-ctx.Done():
	}
}
