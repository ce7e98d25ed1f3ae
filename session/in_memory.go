package session

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/httpcontextmock/logging"
)

// InMemoryOptions configures an InMemoryStore.
type InMemoryOptions struct {
	// ID pins the store identity. A random UUID is used when empty.
	ID string

	// Logger receives lifecycle debug entries (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// InMemoryStore is a volatile core.Session keeping entries in a process
// local map. Load and Commit complete immediately and there is no readiness
// state: every operation behaves the same before Load and after Commit.
// Values are copied on Set and TryGetValue so callers never alias stored bytes.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	id      string
	logger  logging.Logger
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore(optFns ...func(o *InMemoryOptions)) *InMemoryStore {
	opts := InMemoryOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	return &InMemoryStore{
		entries: make(map[string][]byte),
		id:      opts.ID,
		logger:  logging.OrNoOp(opts.Logger),
	}
}

// Load is a no-op; the context is accepted for interface compatibility only.
func (s *InMemoryStore) Load(_ context.Context) error {
	s.logger.Debug("session load", "session_id", s.id)
	return nil
}

// Commit is a no-op; writes are visible as soon as Set returns.
func (s *InMemoryStore) Commit(_ context.Context) error {
	s.logger.Debug("session commit", "session_id", s.id)
	return nil
}

// TryGetValue returns a copy of the value stored for key.
func (s *InMemoryStore) TryGetValue(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Set inserts or overwrites the value for key. A nil value is stored as an
// empty, present value.
func (s *InMemoryStore) Set(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = cp
}

// Remove deletes key if present.
func (s *InMemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear deletes all keys.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
	s.logger.Debug("session cleared", "session_id", s.id)
}

// Keys returns a sorted snapshot of the keys currently present.
func (s *InMemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.entries))
}

// IsAvailable always reports true.
func (s *InMemoryStore) IsAvailable() bool { return true }

// ID returns the fixed store identity.
func (s *InMemoryStore) ID() string { return s.id }
