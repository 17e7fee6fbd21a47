package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the ephemeral logged-in state behind one browser cookie.
type Session struct {
	Username string
	Role     Role
}

// Sessions is an in-memory token registry. Sessions live until logout or
// process restart; the cookie itself is scoped to the browser session.
type Sessions struct {
	mu     sync.Mutex
	active map[string]Session
}

func NewSessions() *Sessions {
	return &Sessions{active: make(map[string]Session)}
}

// Issue registers a new session and returns its opaque token.
func (s *Sessions) Issue(username string, role Role) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.active[token] = Session{Username: username, Role: role}
	s.mu.Unlock()
	return token
}

// Lookup resolves a cookie token to its session, if still active.
func (s *Sessions) Lookup(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.active[token]
	return sess, ok
}

// Revoke ends the session for the given token. Unknown tokens are a no-op.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}
