// pkg/mem/login_states.go
package mem

import (
	"sync"
	"time"
)

type LoginStateStore interface {
	Set(nonce string, ttl time.Duration)

	// Consume reports whether nonce was issued and not yet expired, and removes
	// it (single-use).
	Consume(nonce string) bool

	Len() int
}

type LoginStates struct {
	mu   sync.Mutex
	data map[string]time.Time
	now  func() time.Time
}

func NewLoginStates() *LoginStates {
	return &LoginStates{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *LoginStates) Set(nonce string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.data[nonce] = s.now().Add(ttl)
}

func (s *LoginStates) Consume(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[nonce]
	if !ok {
		return false
	}
	delete(s.data, nonce)
	return !s.now().After(expiresAt)
}

func (s *LoginStates) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// sweepLocked drops expired nonces so abandoned logins do not accumulate.
func (s *LoginStates) sweepLocked() {
	now := s.now()
	for nonce, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, nonce)
		}
	}
}
