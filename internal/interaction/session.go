package interaction

import (
	"sort"
	"sync"
	"time"
)

// Session is the per-learner context passed into every analyzer call.
// Each active learner gets their own Session so logs never interfere.
type Session struct {
	ID        string
	StartedAt time.Time
	Log       *Log
}

// NewSession creates a session with an empty log.
func NewSession(id string, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		StartedAt: startedAt,
		Log:       NewLog(),
	}
}

// NewSessionWithClock creates a session whose log stamps unset event times
// using now. Useful for replaying recorded transcripts deterministically.
func NewSessionWithClock(id string, now func() time.Time) *Session {
	return &Session{
		ID:        id,
		StartedAt: now(),
		Log:       newLogWithClock(now),
	}
}

// Record appends an event to the session log.
func (s *Session) Record(e Event) {
	s.Log.Record(e)
}

// Registry keys one Session per learner for processes serving many
// learners at once. Individual sessions remain single-writer.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// NewRegistryWithClock creates an empty registry whose sessions start and
// stamp events using now.
func NewRegistryWithClock(now func() time.Time) *Registry {
	r := NewRegistry()
	r.now = now
	return r
}

// Open returns the session for id, creating it if needed.
func (r *Registry) Open(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := NewSessionWithClock(id, r.now)
	r.sessions[id] = s
	return s
}

// Get returns the session for id if one is open.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Close forgets the session for id. No-op if it is not open.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// IDs returns the open session IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
