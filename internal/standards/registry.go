package standards

import (
	"sync"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// Registry holds the active standards. It is safe for concurrent use: the
// watcher replaces the set from its own goroutine while sessions read it.
type Registry struct {
	mu    sync.RWMutex
	order []domain.ParameterID
	byID  map[domain.ParameterID]Standard
}

// NewRegistry creates a registry holding set.
func NewRegistry(set []Standard) (*Registry, error) {
	r := &Registry{}
	if err := r.Replace(set); err != nil {
		return nil, err
	}
	return r, nil
}

// Replace swaps the whole set. An empty or invalid set is rejected and the
// previous set stays active.
func (r *Registry) Replace(set []Standard) error {
	if len(set) == 0 {
		return domain.ErrEmptyCatalog
	}
	order := make([]domain.ParameterID, 0, len(set))
	byID := make(map[domain.ParameterID]Standard, len(set))
	for _, s := range set {
		if err := s.validate(); err != nil {
			return err
		}
		if _, dup := byID[s.Name]; !dup {
			order = append(order, s.Name)
		}
		byID[s.Name] = s
	}

	r.mu.Lock()
	r.order = order
	r.byID = byID
	r.mu.Unlock()
	return nil
}

// Names implements ports.ParameterCatalog.
func (r *Registry) Names() []domain.ParameterID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ParameterID(nil), r.order...)
}

// Lookup returns the standard for name.
func (r *Registry) Lookup(name domain.ParameterID) (Standard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[name]
	return s, ok
}

// All returns the standards in catalog order.
func (r *Registry) All() []Standard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Standard, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byID[name])
	}
	return out
}
