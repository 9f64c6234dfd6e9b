package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/wqsuite/internal/domain"
)

func TestEntryStore_AppendPreservesOrder(t *testing.T) {
	s := NewEntryStore()
	s.Append(domain.Entry{Name: "pH", Value: 7.2})
	s.Append(domain.Entry{Name: "Turbidity", Value: 4})
	s.Append(domain.Entry{Name: "Iron", Value: 0.1})

	want := []domain.Entry{
		{Name: "pH", Value: 7.2},
		{Name: "Turbidity", Value: 4},
		{Name: "Iron", Value: 0.1},
	}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestEntryStore_RemoveAt(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    domain.Entry
		rest    []domain.ParameterID
		wantErr bool
	}{
		{"first", 0, domain.Entry{Name: "a", Value: 1}, []domain.ParameterID{"b", "c"}, false},
		{"middle", 1, domain.Entry{Name: "b", Value: 2}, []domain.ParameterID{"a", "c"}, false},
		{"last", 2, domain.Entry{Name: "c", Value: 3}, []domain.ParameterID{"a", "b"}, false},
		{"negative", -1, domain.Entry{}, []domain.ParameterID{"a", "b", "c"}, true},
		{"past end", 3, domain.Entry{}, []domain.ParameterID{"a", "b", "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewEntryStore()
			s.Append(domain.Entry{Name: "a", Value: 1})
			s.Append(domain.Entry{Name: "b", Value: 2})
			s.Append(domain.Entry{Name: "c", Value: 3})

			got, err := s.RemoveAt(tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveAt(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrIndexOutOfRange) {
				t.Errorf("error = %v, want ErrIndexOutOfRange", err)
			}
			if got != tt.want {
				t.Errorf("RemoveAt(%d) = %v, want %v", tt.index, got, tt.want)
			}
			var names []domain.ParameterID
			for _, e := range s.Entries() {
				names = append(names, e.Name)
			}
			if diff := cmp.Diff(tt.rest, names); diff != "" {
				t.Errorf("remaining mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntryStore_EntriesIsACopy(t *testing.T) {
	s := NewEntryStore()
	s.Append(domain.Entry{Name: "pH", Value: 7})

	out := s.Entries()
	out[0].Value = 99

	e, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}
	if e.Value != 7 {
		t.Errorf("store mutated through Entries(): value = %v", e.Value)
	}
}

func TestEntryStore_ClearAndIndexOf(t *testing.T) {
	s := NewEntryStore()
	s.Append(domain.Entry{Name: "pH"})
	s.Append(domain.Entry{Name: "Iron"})

	if got := s.IndexOf("Iron"); got != 1 {
		t.Errorf("IndexOf(Iron) = %d, want 1", got)
	}
	if got := s.IndexOf("Lead"); got != -1 {
		t.Errorf("IndexOf(Lead) = %d, want -1", got)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
	if _, err := s.At(0); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Errorf("At(0) on empty store error = %v, want ErrIndexOutOfRange", err)
	}
}
