package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

type entry struct {
	state   *domain.ConversationState
	touched time.Time
}

// MemoryStore in-memory реализация Store с TTL.
// Истекшие сессии удаляются лениво при чтении.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore создает in-memory хранилище сессий.
// Сессия, к которой не обращались дольше ttl, считается отсутствующей.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get возвращает состояние сессии или nil, если её нет или она истекла
func (s *MemoryStore) Get(_ context.Context, phoneNumber string) (*domain.ConversationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[phoneNumber]
	if !ok {
		return nil, nil
	}

	if s.ttl > 0 && s.now().Sub(e.touched) > s.ttl {
		delete(s.sessions, phoneNumber)
		return nil, nil
	}

	return e.state, nil
}

// Put сохраняет состояние сессии, обновляя отметку времени
func (s *MemoryStore) Put(_ context.Context, phoneNumber string, state *domain.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[phoneNumber] = entry{state: state, touched: s.now()}
	return nil
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(_ context.Context, phoneNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, phoneNumber)
	return nil
}
