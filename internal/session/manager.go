package session

import (
	"sync"
	"time"
)

type entry struct {
	sess     *Session
	lastSeen time.Time
}

// Manager keeps sessions in memory by opaque ID. Idle sessions are evicted
// on the next access after ttl has passed; a zero ttl keeps them forever.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	greeting string
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(greeting string, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		greeting: greeting,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *Manager) Greeting() string { return m.greeting }

// Get returns a live session and marks it as used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evictLocked(now)
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = now
	return e.sess, true
}

func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evictLocked(now)
	e, ok := m.sessions[id]
	if !ok {
		e = &entry{sess: New(m.greeting)}
		m.sessions[id] = e
	}
	e.lastSeen = now
	return e.sess
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) evictLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	cutoff := now.Add(-m.ttl)
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
