package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/telco/backend/internal/application/chat"
)

// entry holds one stored session with its expiration
type entry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryStore implements chat.SessionStore using an in-memory map.
// This is suitable for single-instance deployments and testing.
// Sessions stored here do not survive a restart and are not shared
// across process instances.
type InMemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]entry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryStore creates an in-memory session store with the given TTL.
// It starts a background goroutine to clean up expired sessions.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	store := &InMemoryStore{
		entries:  make(map[string]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// GetOrCreate loads the session for a conversation, or returns a fresh one
// when none exists or the stored one expired
func (s *InMemoryStore) GetOrCreate(ctx context.Context, conversationID string) (*chat.Session, error) {
	s.mu.RLock()
	e, exists := s.entries[conversationID]
	s.mu.RUnlock()

	if !exists || time.Now().After(e.expiresAt) {
		return chat.NewSession(), nil
	}

	var session chat.Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return chat.NewSession(), nil
	}
	if session.Context == nil {
		session.Context = make(map[string]string)
	}
	return &session, nil
}

// Save stores the session and resets its TTL. Sessions are kept encoded so
// a later mutation of the caller's copy cannot leak into the store.
func (s *InMemoryStore) Save(ctx context.Context, conversationID string, session *chat.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[conversationID] = entry{
		data:      data,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the session for a conversation
func (s *InMemoryStore) Delete(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, conversationID)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// Size returns the number of stored sessions (for testing/monitoring)
func (s *InMemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *InMemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

var _ chat.SessionStore = (*InMemoryStore)(nil)
