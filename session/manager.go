package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/Corpus-2021/htmlunit/browser"
	"github.com/Corpus-2021/htmlunit/client"
)

// Manager tracks active sessions, enforces a concurrency limit, and
// reaps sessions left idle past the timeout.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex

	maxSessions     int
	sessionTimeout  time.Duration
	cleanupInterval time.Duration

	shutdown chan struct{}
}

// NewManager creates a session manager with background cleanup running.
func NewManager() *Manager {
	m := &Manager{
		sessions:        make(map[string]*Session),
		maxSessions:     100,
		sessionTimeout:  30 * time.Minute,
		cleanupInterval: 1 * time.Minute,
		shutdown:        make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// CreateSession opens a session for the given browser version and returns
// its ID. A nil version uses the process default.
func (m *Manager) CreateSession(version *browser.BrowserVersion, opts ...client.Option) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return "", fmt.Errorf("maximum sessions limit reached (%d)", m.maxSessions)
	}

	session := NewSession(version, opts...)
	m.sessions[session.ID] = session
	return session.ID, nil
}

// GetSession retrieves an active session by ID.
func (m *Manager) GetSession(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	if !session.IsActive() {
		return nil, fmt.Errorf("session is closed: %s", id)
	}
	return session, nil
}

// AdoptSession registers a session created outside the manager, such as a
// fork, so cleanup and listing cover it.
func (m *Manager) AdoptSession(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return fmt.Errorf("maximum sessions limit reached (%d)", m.maxSessions)
	}
	m.sessions[s.ID] = s
	return nil
}

// CloseSession closes and removes a session.
func (m *Manager) CloseSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[id]
	if !exists {
		return fmt.Errorf("session not found: %s", id)
	}
	session.Close()
	delete(m.sessions, id)
	return nil
}

// ListSessions returns stats for all tracked sessions.
func (m *Manager) ListSessions() []Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]Stats, 0, len(m.sessions))
	for _, session := range m.sessions {
		stats = append(stats, session.Stats())
	}
	return stats
}

// SessionCount returns the number of tracked sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanupExpiredSessions()
		case <-m.shutdown:
			return
		}
	}
}

func (m *Manager) cleanupExpiredSessions() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, session := range m.sessions {
		if now.Sub(session.LastUsed) > m.sessionTimeout {
			session.Close()
			delete(m.sessions, id)
		}
	}
}

// Shutdown closes every session and stops the cleanup loop.
func (m *Manager) Shutdown() {
	close(m.shutdown)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		session.Close()
		delete(m.sessions, id)
	}
}

// SetMaxSessions sets the concurrent session limit.
func (m *Manager) SetMaxSessions(max int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxSessions = max
}

// SetSessionTimeout sets the idle timeout after which cleanup reaps a
// session.
func (m *Manager) SetSessionTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionTimeout = timeout
}
