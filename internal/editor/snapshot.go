package editor

import "github.com/bft-labs/wqsuite/internal/domain"

// Snapshot is an immutable view of the editor after one dispatch.
// Row indices are only meaningful together with Revision.
type Snapshot struct {
	Entries  []domain.Entry
	Selected domain.ParameterID
	Value    float64
	Revision uint64
}

// Row is one rendered entry and the index actions on it must use.
type Row struct {
	Index int
	Entry domain.Entry
}

// Len returns the number of entries in the snapshot.
func (s Snapshot) Len() int { return len(s.Entries) }

// Empty reports whether the snapshot holds no entries.
func (s Snapshot) Empty() bool { return len(s.Entries) == 0 }

// Rows returns the entries paired with their indices, in insertion order.
func (s Snapshot) Rows() []Row {
	rows := make([]Row, len(s.Entries))
	for i, e := range s.Entries {
		rows[i] = Row{Index: i, Entry: e}
	}
	return rows
}

// Contains reports whether an entry with the given name is present.
func (s Snapshot) Contains(name domain.ParameterID) bool {
	for _, e := range s.Entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
