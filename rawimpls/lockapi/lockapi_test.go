package lockapi

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/testkit"
	"github.com/ceyewan/scopedmutex/traits"
)

func TestRawMutex_ZeroValue(t *testing.T) {
	var m RawMutex
	assert.False(t, m.IsLocked())

	m.Lock()
	assert.True(t, m.IsLocked())
	assert.False(t, m.TryLock())
	m.Unlock()

	assert.False(t, m.IsLocked())
}

func TestRawMutex_WrapsSyncMutex(t *testing.T) {
	var mu sync.Mutex
	m := New(&mu)

	ok := m.TryWithLock(func() {
		assert.False(t, mu.TryLock(), "底层锁应处于持有状态")
	})
	require.True(t, ok)

	assert.True(t, mu.TryLock())
	mu.Unlock()
}

func TestNew_TypedNilLocker(t *testing.T) {
	var mu *sync.Mutex
	m := New(mu)

	assert.True(t, m.TryWithLock(func() {
		assert.True(t, m.IsLocked())
	}))
	assert.False(t, m.IsLocked())
}

func TestRawMutex_TryWithLock_Reentrant(t *testing.T) {
	m := New(nil)
	value := 0

	old, ok := traits.TryWithLock(m, func() int {
		prev := value
		value = 1
		assert.False(t, m.TryWithLock(func() { value = 2 }))
		return prev
	})

	require.True(t, ok)
	assert.Equal(t, 0, old)
	assert.Equal(t, 1, value)
}

func TestRawMutex_LIFOPairing(t *testing.T) {
	outer := New(nil)
	inner := New(nil)

	outer.Lock()
	inner.Lock()
	assert.True(t, outer.IsLocked())
	assert.True(t, inner.IsLocked())

	inner.Unlock()
	assert.True(t, outer.IsLocked())
	assert.False(t, inner.IsLocked())

	outer.Unlock()
	assert.False(t, outer.IsLocked())
}

func TestRawMutex_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 500
	)
	m := New(nil)
	counter := 0
	err := testkit.RunConcurrently(testkit.NewContext(t, 10*time.Second), workers, func(context.Context, int) error {
		for j := 0; j < rounds; j++ {
			m.WithLock(func() { counter++ })
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, workers*rounds, counter)
}

func TestRawMutex_ReleasesOnPanic(t *testing.T) {
	if !unwind.Enabled {
		t.Skip("built with scopedmutex_nounwind")
	}
	m := New(nil)
	assert.Panics(t, func() {
		m.WithLock(func() { panic("boom") })
	})
	assert.False(t, m.IsLocked())
	assert.True(t, m.TryLock())
	m.Unlock()
}

func TestFromSemaphore(t *testing.T) {
	sem := semaphore.NewWeighted(1)
	m := FromSemaphore(sem)

	ok := m.TryWithLock(func() {
		assert.False(t, sem.TryAcquire(1))
		assert.False(t, m.TryWithLock(func() {}))
	})
	require.True(t, ok)

	assert.Equal(t, 5, traits.WithLock(m, func() int { return 5 }))
	assert.True(t, sem.TryAcquire(1))
	sem.Release(1)
}

func TestScoped_ReturnsSameInstance(t *testing.T) {
	m := New(nil)
	assert.Same(t, m, traits.Scoped(m))
}
