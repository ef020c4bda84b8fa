// Package session holds server-side authentication state keyed by an opaque
// token. The client only ever sees a cookie carrying the token plus an HMAC
// signature, so a forged or tampered cookie never reaches the store.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"sync"
	"time"
)

// CookieName is the admin session cookie.
const CookieName = "portfolio_sid"

// TTL is the fixed session lifetime. There is no sliding renewal.
const TTL = 24 * time.Hour

// Session is the server-held state for one logged-in admin.
type Session struct {
	ID            string
	Username      string
	Authenticated bool
	ExpiresAt     time.Time
}

// Store is the session backend injected into the HTTP handlers.
type Store interface {
	// Create establishes an authenticated session and returns it.
	Create(username string) (*Session, error)
	// Get returns the session for id, or false when unknown or expired.
	Get(id string) (*Session, bool)
	// Destroy removes the session. Destroying an unknown id is a no-op.
	Destroy(id string) error
}

// MemoryStore keeps sessions in-process; a single-process deployment is
// assumed. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewMemoryStore creates an empty store with the given session lifetime.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, sessions: make(map[string]*Session)}
}

// Create implements Store.
func (m *MemoryStore) Create(username string) (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:            id,
		Username:      username,
		Authenticated: true,
		ExpiresAt:     time.Now().Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	cp := *s
	return &cp, nil
}

// Get implements Store.
func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(s.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, false
	}
	cp := *s
	return &cp, true
}

// Destroy implements Store.
func (m *MemoryStore) Destroy(id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len reports the number of live sessions, pruning expired ones.
func (m *MemoryStore) Len() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	return len(m.sessions)
}

func newID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// Sign produces the cookie value for a session id: "<id>.<hmac>" with the
// signature keyed by the configured session secret.
func Sign(id string, secret []byte) string {
	return id + "." + signature(id, secret)
}

// Verify checks a cookie value and returns the embedded session id. The
// comparison is constant-time.
func Verify(value string, secret []byte) (string, bool) {
	dot := -1
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == '.' {
			dot = i
			break
		}
	}
	if dot <= 0 || dot == len(value)-1 {
		return "", false
	}
	id, sig := value[:dot], value[dot+1:]
	if !hmac.Equal([]byte(sig), []byte(signature(id, secret))) {
		return "", false
	}
	return id, true
}

func signature(id string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
