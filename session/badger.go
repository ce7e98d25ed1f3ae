package session

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/hupe1980/httpcontextmock/logging"
)

const keyPrefix = "sessions/"

// BadgerOptions configures a BadgerStore.
type BadgerOptions struct {
	// Dir is the badger data directory. Empty runs badger fully in memory,
	// so nothing outlives the process.
	Dir string

	// Logger receives store and badger log entries (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// BadgerStore is a shared backing store for DistributedSession handles.
// Every handle opened with the same id sees the entries the others committed.
type BadgerStore struct {
	db     *badger.DB
	logger logging.Logger
}

// OpenBadgerStore opens the backing badger database.
func OpenBadgerStore(optFns ...func(o *BadgerOptions)) (*BadgerStore, error) {
	opts := BadgerOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := logging.OrNoOp(opts.Logger)

	bopts := badger.DefaultOptions(opts.Dir)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	bopts.Logger = &badgerLogger{logger: logger}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}
	logger.Debug("session store opened", "dir", opts.Dir, "in_memory", opts.Dir == "")
	return &BadgerStore{db: db, logger: logger}, nil
}

// Close releases the badger database. Handles report unavailable afterwards.
func (b *BadgerStore) Close() error {
	if b.db.IsClosed() {
		return nil
	}
	return b.db.Close()
}

// Session returns a new handle onto the entries stored under id. An empty id
// allocates a fresh random one. The handle starts unloaded.
func (b *BadgerStore) Session(id string) *DistributedSession {
	if id == "" {
		id = uuid.NewString()
	}
	return &DistributedSession{
		store:   b,
		id:      id,
		prefix:  sessionPrefix(id),
		entries: make(map[string][]byte),
		logger:  b.logger,
	}
}

// DistributedSession is a core.Session whose entries live in a BadgerStore.
// Reads and writes operate on a local working set; Load replaces it with the
// persisted entries and Commit writes it back in a single transaction.
// The first data access loads implicitly. A failed implicit load is logged
// and leaves the session unavailable with an empty working set.
type DistributedSession struct {
	mu      sync.Mutex
	store   *BadgerStore
	id      string
	prefix  []byte
	entries map[string][]byte
	loaded  bool
	dirty   bool
	failed  bool
	logger  logging.Logger
}

// Load replaces the working set with the entries persisted for this id.
func (s *DistributedSession) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return err
	}
	s.failed = false
	return nil
}

// Commit persists the working set if it changed since the last Load or Commit.
func (s *DistributedSession) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.store.db.IsClosed() {
		return ErrStoreClosed
	}
	if !s.dirty {
		return nil
	}

	err := s.store.db.Update(func(txn *badger.Txn) error {
		for _, k := range s.persistedKeys(txn) {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		for k, v := range s.entries {
			if err := txn.Set(s.storageKey(k), v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit session %s: %w", s.id, err)
	}

	s.dirty = false
	s.logger.Debug("session committed", "session_id", s.id, "keys", len(s.entries))
	return nil
}

// TryGetValue returns a copy of the value stored for key.
func (s *DistributedSession) TryGetValue(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()
	v, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Set inserts or overwrites the value for key in the working set.
func (s *DistributedSession) Set(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()
	s.entries[key] = cp
	s.dirty = true
}

// Remove deletes key from the working set if present.
func (s *DistributedSession) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.dirty = true
	}
}

// Clear empties the working set.
func (s *DistributedSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()
	if len(s.entries) > 0 {
		clear(s.entries)
		s.dirty = true
	}
}

// Keys returns a sorted snapshot of the keys in the working set.
func (s *DistributedSession) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()
	return slices.Sorted(maps.Keys(s.entries))
}

// IsAvailable reports whether the backing store is open and the last
// implicit load succeeded.
func (s *DistributedSession) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.db.IsClosed() {
		return false
	}
	s.ensureLoadedLocked()
	return !s.failed
}

// ID returns the session id.
func (s *DistributedSession) ID() string { return s.id }

func (s *DistributedSession) ensureLoadedLocked() {
	if s.loaded {
		return
	}
	if err := s.loadLocked(context.Background()); err != nil {
		s.logger.Error("session load failed", "session_id", s.id, "error", err)
		s.failed = true
		s.loaded = true
	}
}

// loadLocked reads the persisted entries; caller must hold mu.
func (s *DistributedSession) loadLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.store.db.IsClosed() {
		return ErrStoreClosed
	}

	entries := make(map[string][]byte)
	err := s.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = s.prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries[string(item.Key()[len(s.prefix):])] = v
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load session %s: %w", s.id, err)
	}

	s.entries = entries
	s.loaded = true
	s.dirty = false
	s.logger.Debug("session loaded", "session_id", s.id, "keys", len(entries))
	return nil
}

func (s *DistributedSession) persistedKeys(txn *badger.Txn) [][]byte {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = s.prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}

// sessionPrefix length-prefixes id so no id's key range contains another's,
// even when ids contain '/'.
func sessionPrefix(id string) []byte {
	return []byte(fmt.Sprintf("%s%d:%s/", keyPrefix, len(id), id))
}

func (s *DistributedSession) storageKey(key string) []byte {
	k := make([]byte, 0, len(s.prefix)+len(key))
	k = append(k, s.prefix...)
	return append(k, key...)
}

// badgerLogger adapts logging.Logger to badger's Logger interface.
type badgerLogger struct {
	logger logging.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
