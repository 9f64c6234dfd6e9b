package editor

import (
	"fmt"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// EntryStore is the ordered collection of batch entries.
// It does not enforce name uniqueness; BatchEditor owns the duplicate policy.
type EntryStore struct {
	entries []domain.Entry
}

// NewEntryStore creates an empty store.
func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make([]domain.Entry, 0)}
}

// Append adds an entry at the end.
func (s *EntryStore) Append(e domain.Entry) {
	s.entries = append(s.entries, e)
}

// RemoveAt removes and returns the entry at index.
func (s *EntryStore) RemoveAt(index int) (domain.Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return domain.Entry{}, fmt.Errorf("%w: %d (size %d)", domain.ErrIndexOutOfRange, index, len(s.entries))
	}
	e := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return e, nil
}

// Clear empties the store.
func (s *EntryStore) Clear() {
	s.entries = s.entries[:0]
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// At returns the entry at index.
func (s *EntryStore) At(index int) (domain.Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return domain.Entry{}, fmt.Errorf("%w: %d (size %d)", domain.ErrIndexOutOfRange, index, len(s.entries))
	}
	return s.entries[index], nil
}

// IndexOf returns the position of the entry named name, or -1.
func (s *EntryStore) IndexOf(name domain.ParameterID) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Entries returns a copy of the entries in insertion order.
func (s *EntryStore) Entries() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
