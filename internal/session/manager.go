// Package session tracks live console sessions for the HTTP API.
// Each session owns one interpreter; the tree behind them is shared
// and immutable. Sessions expire after an idle TTL.
package session

import (
	"sync"
	"time"

	"github.com/casefolio/console/internal/console"
	"github.com/casefolio/console/internal/monitoring"
	"github.com/casefolio/console/internal/shared/id"
	"github.com/casefolio/console/internal/vfs"
)

// Session pairs a session ID with its interpreter. The interpreter
// itself is single-caller by design; the session's lock is what makes
// concurrent API calls against the same ID safe.
type Session struct {
	ID      id.SessionID
	Console *console.Interpreter

	mu       sync.Mutex
	lastSeen time.Time
}

// Dispatch runs one line on the session's interpreter and refreshes
// its idle clock.
func (s *Session) Dispatch(line string) console.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.Console.Dispatch(line)
}

// Complete proxies autocomplete and refreshes the idle clock.
func (s *Session) Complete(line string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.Console.Complete(line)
}

// Manager owns the session table and its idle sweep. It also owns
// the session gauges: every path that adds or drops a session,
// including the sweep, keeps them current.
type Manager struct {
	fs      *vfs.FS
	ttl     time.Duration
	metrics *monitoring.Metrics

	mu       sync.RWMutex
	sessions map[id.SessionID]*Session

	done    chan struct{}
	stopped sync.Once
}

// NewManager creates a manager over the shared filesystem. Sessions
// idle longer than ttl are dropped by a background sweep.
func NewManager(fs *vfs.FS, ttl time.Duration, metrics *monitoring.Metrics) *Manager {
	m := &Manager{
		fs:       fs,
		ttl:      ttl,
		metrics:  metrics,
		sessions: make(map[id.SessionID]*Session),
		done:     make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Create starts a new session with its own interpreter rooted at "/".
func (m *Manager) Create() *Session {
	s := &Session{
		ID:       id.NewSessionID(),
		Console:  console.New(m.fs),
		lastSeen: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.metrics.SessionsCreated.Inc()
	m.metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (m *Manager) Get(sid id.SessionID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sid]
	return s, ok
}

// Remove drops a session immediately.
func (m *Manager) Remove(sid id.SessionID) {
	m.mu.Lock()
	delete(m.sessions, sid)
	m.metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the idle sweep.
func (m *Manager) Close() {
	m.stopped.Do(func() { close(m.done) })
}

func (m *Manager) sweep() {
	interval := m.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.expire(now)
		}
	}
}

func (m *Manager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sid, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()
		if idle > m.ttl {
			delete(m.sessions, sid)
		}
	}
	m.metrics.SessionsActive.Set(float64(len(m.sessions)))
}
