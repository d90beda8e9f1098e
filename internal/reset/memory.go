package reset

import (
	"context"
	"sync"
	"time"

	"github.com/workdesk/workdesk/internal/shared"
)

type memoryEntry struct {
	userID    string
	createdAt time.Time
}

// MemoryStore is an in-process Store with the same semantics as the Mongo
// implementation. It backs tests and local development.
type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]memoryEntry
	byUser map[string]string
}

// NewMemoryStore constructs an empty store with the given expiry window.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]memoryEntry),
		byUser: make(map[string]string),
	}
}

// WithClock overrides the time source. Test helper.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Issue(_ context.Context, userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byUser[userID]; ok {
		delete(s.tokens, old)
	}
	s.tokens[token] = memoryEntry{userID: userID, createdAt: s.now()}
	s.byUser[userID] = token
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return "", shared.ErrNotFound
	}
	if s.now().Sub(entry.createdAt) >= s.ttl {
		delete(s.tokens, token)
		delete(s.byUser, entry.userID)
		return "", shared.ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Consume(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token, ok := s.byUser[userID]; ok {
		delete(s.tokens, token)
		delete(s.byUser, userID)
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)
