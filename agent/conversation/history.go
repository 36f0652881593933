package conversation

import (
	"sync"
	"time"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// Session holds the append-only conversation history for one session.
// Turns are chronological and are never removed or reordered. A session
// is driven by a single writer at a time; the lock only guards against
// a concurrent Snapshot while a turn is being appended.
type Session struct {
	mu        sync.RWMutex
	sessionID string
	turns     []contractx.Turn
	updatedAt time.Time
}

func NewSession(sessionID string) *Session {
	return &Session{sessionID: sessionID}
}

func (s *Session) ID() string {
	return s.sessionID
}

// Append records one turn at the end of the history. System turns are
// prompt scaffolding and must never be persisted, so they are dropped.
func (s *Session) Append(turn contractx.Turn) {
	if turn.Role == contractx.RoleSystem {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	s.updatedAt = time.Now().UTC()
}

// Snapshot returns a copy of the history in insertion order. Callers may
// freely extend the returned slice without affecting the session.
func (s *Session) Snapshot() []contractx.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]contractx.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// LastUserContent returns the content of the most recent user turn, or
// the empty string when no user turn exists yet.
func (s *Session) LastUserContent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Role == contractx.RoleUser {
			return s.turns[i].Content
		}
	}
	return ""
}
