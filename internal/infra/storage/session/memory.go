package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rusunawa-id/booking-service/internal/wizard"
)

// MemoryStore хранит сессии мастера в памяти процесса.
// Используется, когда Redis отключён в конфигурации, и в тестах.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]wizard.State
	now      func() time.Time
}

// NewMemoryStore создает пустое хранилище сессий
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]wizard.State),
		now:      time.Now,
	}
}

// Get возвращает сессию по ID. Истёкшие сессии удаляются.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*wizard.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if state.IsExpired(s.now()) {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}

	return &state, nil
}

// Save сохраняет состояние, если текущая ревизия в хранилище равна expectedRevision.
// expectedRevision = 0 означает создание новой сессии.
func (s *MemoryStore) Save(_ context.Context, state wizard.State, expectedRevision int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[state.SessionID]
	if err := checkRevision(current.Revision, ok, expectedRevision); err != nil {
		return err
	}

	s.sessions[state.SessionID] = state
	return nil
}

func checkRevision(current int64, exists bool, expected int64) error {
	if !exists {
		if expected != 0 {
			return fmt.Errorf("%w: session no longer exists", ErrRevisionConflict)
		}
		return nil
	}
	if current != expected {
		return fmt.Errorf("%w: stored revision %d, expected %d", ErrRevisionConflict, current, expected)
	}
	return nil
}
