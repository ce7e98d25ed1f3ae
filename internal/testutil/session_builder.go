package testutil

import (
	"github.com/hupe1980/httpcontextmock/core"
	"github.com/hupe1980/httpcontextmock/session"
)

// SessionBuilder helps construct in-memory sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("sess-1").String("Name", "Mike").Int32("Age", 32).Build()
type SessionBuilder struct {
	id     string
	writes []func(s core.Session)
}

// NewSessionBuilder creates a new builder for a session with the given id.
// An empty id lets the store pick a random one.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id}
}

// Bytes sets or overwrites a raw value on the resulting session (chainable).
func (b *SessionBuilder) Bytes(key string, val []byte) *SessionBuilder {
	b.writes = append(b.writes, func(s core.Session) { s.Set(key, val) })
	return b
}

// String sets a UTF-8 encoded value (chainable).
func (b *SessionBuilder) String(key, val string) *SessionBuilder {
	b.writes = append(b.writes, func(s core.Session) { core.SetString(s, key, val) })
	return b
}

// Int32 sets a big-endian encoded 32-bit value (chainable).
func (b *SessionBuilder) Int32(key string, val int32) *SessionBuilder {
	b.writes = append(b.writes, func(s core.Session) { core.SetInt32(s, key, val) })
	return b
}

// Build returns a *session.InMemoryStore with the values applied in call order.
func (b *SessionBuilder) Build() *session.InMemoryStore {
	s := session.NewInMemoryStore(func(o *session.InMemoryOptions) { o.ID = b.id })
	b.Apply(s)
	return s
}

// Apply writes the configured values into an existing session.
func (b *SessionBuilder) Apply(s core.Session) {
	for _, w := range b.writes {
		w(s)
	}
}
