package app

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/ports"
)

// Manager opens and closes sessions. Sessions never share state; the
// manager only tracks which ones are open.
type Manager struct {
	mu       sync.Mutex
	collab   Collaborators
	logger   ports.Logger
	sessions map[string]*Session
	newID    func() string
}

// NewManager creates a session manager over the given collaborators.
func NewManager(c Collaborators, logger ports.Logger) (*Manager, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Manager{
		collab:   c,
		logger:   logger,
		sessions: make(map[string]*Session),
		newID:    uuid.NewString,
	}, nil
}

// Open creates a new session with a fresh, empty batch.
func (m *Manager) Open() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	if _, exists := m.sessions[id]; exists {
		return nil, fmt.Errorf("session id collision: %s", id)
	}
	s, err := NewSession(id, m.collab, m.logger)
	if err != nil {
		return nil, err
	}
	m.sessions[id] = s
	m.logger.Info("session opened", ports.Session(id), ports.Int("open", len(m.sessions)))
	return s, nil
}

// Get returns an open session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionClosed)
	}
	return s, nil
}

// Close closes a session and drops its batch.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionClosed)
	}
	s.close()
	delete(m.sessions, id)
	m.logger.Info("session closed", ports.Session(id), ports.Int("open", len(m.sessions)))
	return nil
}

// CloseAll closes every open session.
func (m *Manager) CloseAll() {
	for _, id := range m.IDs() {
		_ = m.Close(id)
	}
}

// IDs returns the ids of the open sessions in sorted order.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
