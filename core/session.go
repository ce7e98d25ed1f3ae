package core

import "context"

// Session is the capability set of a request session store: an opaque
// key/value mapping from string keys to byte values with explicit load and
// commit hooks.
//
// Contract:
//   - Load must complete before TryGetValue is guaranteed to reflect
//     persisted state
//   - After Commit returns nil, all prior Set/Remove/Clear calls are visible
//     to a subsequent Load by any party sharing the same backing store
//   - Set overwrites; the last write for a key wins
//   - A missing key is reported through the boolean, never as an error
//   - Keys returns a snapshot of the keys present at call time
type Session interface {
	Load(ctx context.Context) error
	Commit(ctx context.Context) error
	TryGetValue(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
	Clear()
	Keys() []string
	IsAvailable() bool
	ID() string
}
