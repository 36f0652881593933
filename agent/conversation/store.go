package conversation

import (
	"strings"
	"sync"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// Store hands out the session for a given id, creating it on first use.
type Store interface {
	LoadOrCreate(sessionID string) (*Session, error)
}

// MemoryStore keeps sessions in process memory for the process lifetime.
// Histories are intentionally not persisted across restarts.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session, 4),
	}
}

func (s *MemoryStore) LoadOrCreate(sessionID string) (*Session, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, contractx.ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[id]; ok {
		return existing, nil
	}
	created := NewSession(id)
	s.sessions[id] = created
	return created, nil
}
