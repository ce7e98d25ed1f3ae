package session

import (
	"context"
	"sync"
	"testing"

	"github.com/hupe1980/httpcontextmock/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Session = (*InMemoryStore)(nil)

func TestInMemoryStore_SetAndTryGetValue(t *testing.T) {
	s := NewInMemoryStore()

	s.Set("k", []byte("v"))

	v, ok := s.TryGetValue("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestInMemoryStore_Overwrite(t *testing.T) {
	s := NewInMemoryStore()

	s.Set("k", []byte("first"))
	s.Set("k", []byte("second"))

	v, ok := s.TryGetValue("k")
	require.True(t, ok)
	assert.Equal(t, []byte("second"), v)
	assert.Equal(t, []string{"k"}, s.Keys())
}

func TestInMemoryStore_MissingKey(t *testing.T) {
	s := NewInMemoryStore()

	v, ok := s.TryGetValue("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestInMemoryStore_KeysAreCaseSensitive(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("Name", []byte("Mike"))

	_, ok := s.TryGetValue("name")
	assert.False(t, ok)
}

func TestInMemoryStore_EmptyAndNilValues(t *testing.T) {
	s := NewInMemoryStore()

	s.Set("empty", []byte{})
	s.Set("nil", nil)
	s.Set("", []byte("blank key"))

	for _, k := range []string{"empty", "nil"} {
		v, ok := s.TryGetValue(k)
		require.True(t, ok, k)
		assert.Empty(t, v, k)
	}
	v, ok := s.TryGetValue("")
	require.True(t, ok)
	assert.Equal(t, "blank key", string(v))
}

func TestInMemoryStore_Remove(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))

	s.Remove("a")
	_, ok := s.TryGetValue("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, s.Keys())

	s.Remove("does_not_exist")
	assert.Equal(t, []string{"b"}, s.Keys())
}

func TestInMemoryStore_Clear(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))

	s.Clear()
	assert.Empty(t, s.Keys())
	for _, k := range []string{"a", "b"} {
		_, ok := s.TryGetValue(k)
		assert.False(t, ok, k)
	}

	s.Clear()
	assert.Empty(t, s.Keys())
}

func TestInMemoryStore_KeysSnapshot(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("B", []byte("2"))
	s.Set("A", []byte("1"))

	keys := s.Keys()
	assert.ElementsMatch(t, []string{"A", "B"}, keys)

	s.Set("C", []byte("3"))
	s.Remove("A")
	assert.ElementsMatch(t, []string{"A", "B"}, keys)
	assert.ElementsMatch(t, []string{"B", "C"}, s.Keys())
}

func TestInMemoryStore_ValueIsolation(t *testing.T) {
	s := NewInMemoryStore()
	data := []byte("hello")
	s.Set("k", data)

	data[0] = 'H'
	out, _ := s.TryGetValue("k")
	assert.Equal(t, "hello", string(out))

	out[0] = 'x'
	out2, _ := s.TryGetValue("k")
	assert.Equal(t, "hello", string(out2))
}

func TestInMemoryStore_IdentityAndAvailability(t *testing.T) {
	s := NewInMemoryStore()
	other := NewInMemoryStore()

	assert.True(t, s.IsAvailable())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, s.ID(), s.ID())
	assert.NotEqual(t, s.ID(), other.ID())

	pinned := NewInMemoryStore(func(o *InMemoryOptions) { o.ID = "InMemorySession" })
	assert.Equal(t, "InMemorySession", pinned.ID())
}

func TestInMemoryStore_LoadCommitAreNoOps(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("before", []byte("1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Commit(ctx))
	s.Set("after-commit", []byte("2"))
	require.NoError(t, s.Load(ctx))
	s.Remove("before")
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{"after-commit"}, s.Keys())
	assert.True(t, s.IsAvailable())
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := string(rune('A' + (i % 5)))
			s.Set(k, []byte{byte(i)})
			_, _ = s.TryGetValue(k)
			_ = s.Keys()
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Keys(), 5)
}
