package session

import "sync"

// TokenStore holds the cached admin token between requests. The
// source kept this in global browser storage; here it is an explicit
// object handed to the composition root, with its own lifecycle, so
// the missing-token path is testable in isolation.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryStore is the default TokenStore.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
