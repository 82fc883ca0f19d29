package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxEntries = 10000
	DefaultTTL        = 12 * time.Hour
)

// Store keeps sessions in memory with an idle timeout.
type Store struct {
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a Store holding at most maxEntries sessions, each dropped after ttl without use.
func NewStore(maxEntries int, ttl time.Duration) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxEntries, nil, ttl),
	}
}

// Get returns the session with id and refreshes its idle timeout.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s, ok := st.sessions.Get(id)
	if !ok {
		return nil, false
	}
	st.sessions.Add(id, s)
	return s, true
}

// New creates and stores an empty session.
func (st *Store) New() *Session {
	s := newSession(uuid.NewString())
	st.sessions.Add(s.id, s)
	return s
}

// Rotate moves the state of s to a session with a fresh id and drops s.
// It returns the new session; s keeps no user and no pending flashes.
func (st *Store) Rotate(s *Session) *Session {
	next := newSession(uuid.NewString())
	s.moveTo(next)
	st.sessions.Add(next.id, next)
	st.sessions.Remove(s.id)
	return next
}

// Delete drops the session with id.
func (st *Store) Delete(id string) {
	st.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}
