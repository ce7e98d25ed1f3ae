package httpcontextmock

import (
	"context"

	"github.com/hupe1980/httpcontextmock/core"
	"github.com/stretchr/testify/mock"
)

// SessionMock is a testify mock implementing core.Session.
type SessionMock struct {
	mock.Mock
}

var _ core.Session = (*SessionMock)(nil)

// Load records the call and returns the programmed error.
func (m *SessionMock) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Commit records the call and returns the programmed error.
func (m *SessionMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// TryGetValue expects Return(value []byte, found bool).
func (m *SessionMock) TryGetValue(key string) ([]byte, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

// Set records the call.
func (m *SessionMock) Set(key string, value []byte) { m.Called(key, value) }

// Remove records the call.
func (m *SessionMock) Remove(key string) { m.Called(key) }

// Clear records the call.
func (m *SessionMock) Clear() { m.Called() }

// Keys returns the programmed key slice.
func (m *SessionMock) Keys() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// IsAvailable returns the programmed availability.
func (m *SessionMock) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

// ID returns the programmed session id.
func (m *SessionMock) ID() string {
	args := m.Called()
	return args.String(0)
}

// FeaturesMock is a testify mock implementing core.FeatureCollection.
type FeaturesMock struct {
	mock.Mock
}

var _ core.FeatureCollection = (*FeaturesMock)(nil)

// Get returns the programmed feature, or nil for names that were never set up
// or whose expectations are used up.
func (m *FeaturesMock) Get(name string) any {
	if !m.hasExpectation(name) {
		return nil
	}
	args := m.Called(name)
	return args.Get(0)
}

func (m *FeaturesMock) hasExpectation(name string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method != "Get" || len(call.Arguments) != 1 || call.Repeatability == -1 {
			continue
		}
		if _, diff := call.Arguments.Diff([]any{name}); diff == 0 {
			return true
		}
	}
	return false
}
