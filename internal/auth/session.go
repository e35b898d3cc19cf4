// Package auth holds the session state of an iiko Cloud API client: the
// bearer token obtained from the access_token endpoint and whether the
// session has ever authenticated.
package auth

import "sync"

// Session is the two-state token store owned by a client instance. It starts
// unauthenticated; Store transitions it to authenticated and replaces any
// previous token. It never reverts on its own — there is no expiry model.
//
// Concurrent Authenticate calls are last-writer-wins on the token; the mutex
// only prevents torn reads, it does not serialize authentication.
type Session struct {
	mu            sync.RWMutex
	token         string
	authenticated bool
}

// NewSession creates an unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Store saves the bearer token and marks the session authenticated.
func (s *Session) Store(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.authenticated = true
}

// Token returns the stored bearer token. ok is false while the session has
// never authenticated.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.authenticated
}

// Authenticated reports whether a token has been stored.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}
