package session

import (
	"sync"
	"time"
)

const sweepInterval = time.Minute

// Registry is the process wide table of active sessions, keyed by token.
// Reads proceed in parallel; a writer excludes readers only for the single
// map mutation. Individual sessions are never locked.
type Registry struct {
	mutex    sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewRegistry creates a session registry. A ttl of zero disables expiry;
// sessions then live until Remove is called. A positive ttl starts a
// background sweeper that evicts sessions older than ttl.
func NewRegistry(ttl time.Duration) *Registry {
	var registry = &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	if ttl > 0 {
		registry.ticker = time.NewTicker(sweepInterval)
		registry.done = make(chan struct{})
		go registry.sweep()
	}
	return registry
}

func (r *Registry) sweep() {
	for {
		select {
		case <-r.ticker.C:
			r.evictExpired(time.Now())
		case <-r.done:
			return
		}
	}
}

func (r *Registry) evictExpired(now time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for token, session := range r.sessions {
		if now.Sub(session.CreatedAt) > r.ttl {
			delete(r.sessions, token)
		}
	}
}

// Stop halts the expiry sweeper. Safe to call on a registry without TTL.
func (r *Registry) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
		close(r.done)
	}
}

// Create mints a session for dn and uid with a fresh random token. The
// session is not registered until Add is called.
func (r *Registry) Create(dn, uid string) *Session {
	return &Session{
		Token:     randomToken(),
		DN:        dn,
		UID:       uid,
		CreatedAt: time.Now(),
	}
}

// Add registers the session under its token, silently overwriting any
// existing mapping. The token space is large relative to the number of
// concurrent sessions, so collisions are not treated specially.
func (r *Registry) Add(session *Session) {
	r.mutex.Lock()
	r.sessions[session.Token] = session
	r.mutex.Unlock()
}

// Get returns the session registered under token, or false if the token is
// unknown or the session has outlived the configured TTL.
func (r *Registry) Get(token string) (*Session, bool) {
	r.mutex.RLock()
	var session, found = r.sessions[token]
	r.mutex.RUnlock()
	if !found {
		return nil, false
	}
	if r.ttl > 0 && time.Since(session.CreatedAt) > r.ttl {
		return nil, false
	}
	return session, true
}

// Remove deletes the mapping for token. Removing an unknown token is a no-op.
func (r *Registry) Remove(token string) {
	r.mutex.Lock()
	delete(r.sessions, token)
	r.mutex.Unlock()
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sessions)
}
