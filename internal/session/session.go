package session

import (
	"sync"
	"sync/atomic"

	"golang.org/x/oauth2"

	"catalog-console/internal/authentication"
	"catalog-console/internal/notify"
)

// Session is the per-browser state the console keeps between requests.
type Session struct {
	id string

	mu       sync.Mutex
	username string
	token    *oauth2.Token
	flashes  []notify.Message
	gates    map[string]*atomic.Bool

	authLoading atomic.Bool
}

func newSession(id string) *Session {
	return &Session{
		id:    id,
		gates: make(map[string]*atomic.Bool),
	}
}

// ID returns the opaque cookie value.
func (s *Session) ID() string { return s.id }

// SignIn stores the outcome of a successful authentication.
func (s *Session) SignIn(auth authentication.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = auth.Username
	s.token = auth.Token
}

// SignOut forgets the user but keeps pending flashes.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.token = nil
}

func (s *Session) moveTo(next *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next.mu.Lock()
	defer next.mu.Unlock()
	next.username, s.username = s.username, ""
	next.token, s.token = s.token, nil
	next.flashes, s.flashes = s.flashes, nil
}

// Authenticated reports whether a non-expired token is held.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil && s.token.Valid()
}

// Username returns the signed-in username, or "".
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// Token returns the session token, or nil.
func (s *Session) Token() *oauth2.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Push queues a notification for the next rendered page.
func (s *Session) Push(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, msg)
}

// Drain returns and clears the queued notifications.
func (s *Session) Drain() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

// BeginAuth raises the loading flag. It returns false if a sign-in is already running.
func (s *Session) BeginAuth() bool {
	return s.authLoading.CompareAndSwap(false, true)
}

// EndAuth lowers the loading flag.
func (s *Session) EndAuth() {
	s.authLoading.Store(false)
}

// IsLoading reports whether a sign-in is in flight for this session.
func (s *Session) IsLoading() bool {
	return s.authLoading.Load()
}

// TryAcquire claims the in-flight slot named key. ok is false while another holder has it.
func (s *Session) TryAcquire(key string) (release func(), ok bool) {
	s.mu.Lock()
	gate, found := s.gates[key]
	if !found {
		gate = &atomic.Bool{}
		s.gates[key] = gate
	}
	s.mu.Unlock()

	if !gate.CompareAndSwap(false, true) {
		return func() {}, false
	}
	return func() { gate.Store(false) }, true
}

// Busy reports whether the slot named key is held.
func (s *Session) Busy(key string) bool {
	s.mu.Lock()
	gate, found := s.gates[key]
	s.mu.Unlock()
	return found && gate.Load()
}
