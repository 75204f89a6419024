package memory

import (
	"context"
	"sync"

	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore maps session tokens to sessions for the life of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entities.Session)}
}

func (s *SessionStore) Save(ctx context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *SessionStore) FindByToken(ctx context.Context, token string) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &session, true
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
