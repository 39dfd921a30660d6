package core

import "sync"

// StoreState is the navigation state of a Store.
type StoreState string

const (
	StateEmpty  StoreState = "empty"
	StateLoaded StoreState = "loaded"
)

// Store holds the current collection and the cursor over it.
//
// Load is the only way the collection changes, and it replaces the collection
// and resets the cursor in one step. Whenever the store is loaded the cursor
// is a valid index.
type Store struct {
	mu     sync.RWMutex
	notes  Collection
	cursor int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the collection. A non-empty collection puts the cursor on the
// first note; an empty one leaves the store Empty.
func (s *Store) Load(c Collection) {
	notes := c.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.cursor = 0
}

// Next moves the cursor forward, clamping at the last note.
func (s *Store) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.notes)-1 {
		s.cursor++
	}
}

// Previous moves the cursor back, clamping at the first note.
func (s *Store) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
}

// State reports whether a collection is loaded.
func (s *Store) State() StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.notes) == 0 {
		return StateEmpty
	}
	return StateLoaded
}

// Current returns the note under the cursor. ok is false when Empty.
func (s *Store) Current() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.notes) == 0 {
		return Note{}, false
	}
	n := s.notes[s.cursor]
	n.Tags = append([]string{}, n.Tags...)
	return n, true
}

// Cursor returns the cursor. ok is false when Empty.
func (s *Store) Cursor() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.notes) == 0 {
		return 0, false
	}
	return s.cursor, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// HasNext reports whether Next would move the cursor.
func (s *Store) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor < len(s.notes)-1
}

// HasPrevious reports whether Previous would move the cursor.
func (s *Store) HasPrevious() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes) > 0 && s.cursor > 0
}

// Notes returns a copy of the loaded collection.
func (s *Store) Notes() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.Clone()
}

// Tag is a placeholder for tagging the current note.
func (s *Store) Tag(tag string) error { return ErrNotImplemented }

// Edit is a placeholder for editing the current note.
func (s *Store) Edit(content string) error { return ErrNotImplemented }

// Delete is a placeholder for deleting the current note.
func (s *Store) Delete() error { return ErrNotImplemented }
