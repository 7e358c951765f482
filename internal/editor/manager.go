package editor

import (
	"errors"
	"sync"
)

var ErrNoSession = errors.New("no editor session open for layout")

// Manager holds the open editing sessions, one per layout. Sessions are
// in-memory only; closing one discards unsaved edits.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Open registers a session for a layout, replacing any previous one.
func (m *Manager) Open(layoutID string, session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[layoutID] = session
}

// Get returns the open session for a layout.
func (m *Manager) Get(layoutID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[layoutID]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

// Close discards the session for a layout.
func (m *Manager) Close(layoutID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, layoutID)
}
