package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ExportFileName is the name under which Save delivers the export.
const ExportFileName = "textFilesData.json"

// Config holds the collaborators of a Service.
type Config struct {
	Reader    ArchiveReader
	Segmenter Segmenter
	// Codec is the format used by Save and by Export/Import when called with nil.
	Codec  Codec
	Sink   Sink
	Logger *slog.Logger
}

// Service handles the business logic for note collections: loading them from
// archives or interchange files, navigating them and exporting them.
type Service struct {
	reader    ArchiveReader
	extractor *Extractor
	codec     Codec
	sink      Sink
	store     *Store
	logger    *slog.Logger

	// loadMu serializes Upload and Import; overlapping calls get ErrBusy.
	loadMu sync.Mutex
	busy   atomic.Bool

	mu     sync.RWMutex
	source string
}

// NewService creates a new Service with an empty store.
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		reader:    cfg.Reader,
		extractor: NewExtractor(cfg.Segmenter, logger),
		codec:     cfg.Codec,
		sink:      cfg.Sink,
		store:     NewStore(),
		logger:    logger,
	}
}

// Store exposes the navigation state.
func (s *Service) Store() *Store {
	return s.store
}

// Upload extracts the notes of an archive and loads them.
// name identifies the archive for logging and introspection.
// On failure the previously loaded collection is left untouched.
func (s *Service) Upload(ctx context.Context, name string, data []byte) error {
	if s.reader == nil {
		return fmt.Errorf("no archive reader configured")
	}
	return s.exclusive(func() error {
		tree, err := s.reader.Read(ctx, data)
		if err != nil {
			s.logger.Warn("archive rejected", "source", name, "error", err)
			return err
		}

		notes, err := s.extractor.Extract(ctx, tree)
		if err != nil {
			s.logger.Warn("extraction failed", "source", name, "error", err)
			return err
		}

		s.load(name, notes)
		return nil
	})
}

// Import parses interchange data and loads it. A nil codec means the
// service's default codec. On failure the store is left untouched.
func (s *Service) Import(ctx context.Context, name string, data []byte, codec Codec) error {
	codec, err := s.codecOrDefault(codec)
	if err != nil {
		return err
	}
	return s.exclusive(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		notes, err := codec.Decode(data)
		if err != nil {
			s.logger.Warn("import rejected", "source", name, "format", codec.Name(), "error", err)
			return err
		}
		s.load(name, notes)
		return nil
	})
}

// Export serializes the loaded collection. A nil codec means the service's
// default codec. An empty store exports an empty list.
func (s *Service) Export(codec Codec) ([]byte, error) {
	codec, err := s.codecOrDefault(codec)
	if err != nil {
		return nil, err
	}
	data, err := codec.Encode(s.store.Notes())
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", codec.Name(), err)
	}
	return data, nil
}

// Save exports the collection with the default codec and delivers it to the
// sink as ExportFileName.
func (s *Service) Save(ctx context.Context) error {
	if s.sink == nil {
		return ErrNoSink
	}
	data, err := s.Export(nil)
	if err != nil {
		return err
	}
	if err := s.sink.Deliver(ctx, ExportFileName, data); err != nil {
		return fmt.Errorf("deliver %s: %w", ExportFileName, err)
	}
	s.logger.Info("collection saved", "file", ExportFileName, "notes", s.store.Len())
	return nil
}

// Next moves to the next note.
func (s *Service) Next() { s.store.Next() }

// Previous moves to the previous note.
func (s *Service) Previous() { s.store.Previous() }

// Current returns the note under the cursor.
func (s *Service) Current() (Note, bool) { return s.store.Current() }

func (s *Service) exclusive(fn func() error) error {
	if !s.loadMu.TryLock() {
		return ErrBusy
	}
	defer s.loadMu.Unlock()

	s.busy.Store(true)
	defer s.busy.Store(false)
	return fn()
}

func (s *Service) load(name string, notes Collection) {
	s.store.Load(notes)

	s.mu.Lock()
	s.source = name
	s.mu.Unlock()

	s.logger.Info("collection loaded", "source", name, "notes", len(notes))
}

func (s *Service) codecOrDefault(c Codec) (Codec, error) {
	if c != nil {
		return c, nil
	}
	if s.codec == nil {
		return nil, fmt.Errorf("no codec configured: %w", ErrUnknownFormat)
	}
	return s.codec, nil
}
