package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const sessionTokenBytes = 32

type session struct {
	userID    uint64
	createdAt time.Time
}

// Sessions maps opaque tokens to logged-in users. It is constructed once at
// process start and injected into whatever needs it; sessions live in memory
// only and do not survive a restart.
//
// All methods are safe for concurrent use.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.RWMutex
	active map[string]session
}

// NewSessions creates an empty session store. A positive ttl bounds the
// lifetime of each session measured from creation; zero means sessions never
// expire.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:    ttl,
		now:    time.Now,
		active: make(map[string]session),
	}
}

// Create registers a session for the given user and returns the opaque token
// to be set as the client cookie. Tokens are 32 bytes of crypto/rand output,
// base64url encoded.
func (s *Sessions) Create(userID uint64) (string, error) {
	var buf [sessionTokenBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("session token generation failed: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf[:])

	s.mu.Lock()
	s.active[token] = session{userID: userID, createdAt: s.now()}
	s.mu.Unlock()
	return token, nil
}

// Resolve looks up the user for a token. It reports false for tokens that are
// absent, malformed, or past the store's TTL; expired entries are removed on
// observation.
func (s *Sessions) Resolve(token string) (uint64, bool) {
	s.mu.RLock()
	sess, ok := s.active[token]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if s.ttl > 0 && s.now().Sub(sess.createdAt) > s.ttl {
		s.Destroy(token)
		return 0, false
	}
	return sess.userID, true
}

// Destroy removes a session unconditionally. Destroying an unknown token is
// not an error.
func (s *Sessions) Destroy(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}
