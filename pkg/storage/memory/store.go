// Package memory provides an in-process Store used by tests and demos.
package memory

import (
	"context"
	"sync"

	"github.com/quillstack/quill/pkg/storage"
)

// Store keeps records in a slice, in insertion order. It implements
// storage.Store and is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []storage.Record
	seq     int64
}

var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Seed inserts records directly, assigning insertion sequences. Intended
// for tests and demos that need a pre-populated store.
func (s *Store) Seed(records ...storage.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.seq++
		r.Seq = s.seq
		s.records = append(s.records, r)
	}
}

// ScanAll returns a copy of every stored record.
func (s *Store) ScanAll(_ context.Context) ([]storage.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(_ context.Context, id string) (storage.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return storage.Record{}, false, nil
}

// Put inserts or replaces the record identified by r.ID. A replacement
// keeps the original position and insertion sequence.
func (s *Store) Put(_ context.Context, r storage.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.ID == r.ID {
			r.Seq = existing.Seq
			s.records[i] = r
			return nil
		}
	}
	s.seq++
	r.Seq = s.seq
	s.records = append(s.records, r)
	return nil
}

// Replace overwrites title and content of an existing record, keeping its
// CreatedAt, position and insertion sequence. Reports whether it existed.
func (s *Store) Replace(_ context.Context, r storage.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.ID == r.ID {
			s.records[i].Title = r.Title
			s.records[i].Content = r.Content
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes a record by ID and reports whether it existed.
func (s *Store) Remove(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}
