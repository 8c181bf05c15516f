package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is a process-local session store. It backs tests and single-node
// deployments without Redis; state is lost on restart.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]int64
}

func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]int64),
	}
}

func (s *Memory) Create(ctx context.Context, accountID int64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = accountID

	return token, nil
}

func (s *Memory) AccountID(ctx context.Context, token string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}

	return id, nil
}

func (s *Memory) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)

	return nil
}
