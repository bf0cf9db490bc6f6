// Package memory provides the in-memory vector store backing a single
// session. Contents do not survive the process.
package memory

import (
	"sync"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

// Store keeps embedded chunks in insertion order. An RWMutex keeps
// mutations exclusive; readers always observe fully applied inserts and
// removals, never a partial batch.
type Store struct {
	mu        sync.RWMutex
	dimension int
	records   []domain.VectorRecord
}

// NewStore creates an empty store accepting vectors of the given dimension.
func NewStore(dimension int) *Store {
	return &Store{dimension: dimension}
}

// Insert appends records in the given order. Every embedding must match the
// store dimension; a mismatch rejects the whole batch before any append.
func (s *Store) Insert(records []domain.VectorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if len(r.Embedding) != s.dimension {
			return domain.DimensionError(s.dimension, len(r.Embedding))
		}
	}
	s.records = append(s.records, records...)
	return nil
}

// RemoveByDocument deletes every record belonging to the given document.
// Removing an unknown document is a no-op.
func (s *Store) RemoveByDocument(documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.DocumentID != documentID {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

// Clear empties the store.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// All returns a snapshot of the current records in insertion order. The
// returned slice is a copy; callers may not mutate stored state through it.
func (s *Store) All() []domain.VectorRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.VectorRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
