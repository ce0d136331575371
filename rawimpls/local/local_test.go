package local

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/traits"
	"github.com/ceyewan/scopedmutex/xerrors"
)

func TestRawMutex_TryWithLock(t *testing.T) {
	var m RawMutex
	value := 0

	ok := m.TryWithLock(func() {
		value = 1
		assert.False(t, m.TryWithLock(func() { value = 2 }))
	})

	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.False(t, m.IsLocked())
}

func TestRawMutex_WithLock_Reentrant(t *testing.T) {
	m := New()

	var recovered any
	m.WithLock(func() {
		defer func() { recovered = recover() }()
		m.WithLock(func() {})
	})

	err, ok := recovered.(error)
	require.True(t, ok, "panic 值应为 error，实际 %v", recovered)
	assert.True(t, errors.Is(err, traits.ErrDeadlocked))
	assert.Equal(t, traits.CodeDeadlocked, xerrors.GetCode(err))
	assert.Contains(t, err.Error(), Name)
	assert.False(t, m.IsLocked())
}

func TestRawMutex_ReleasesOnPanic(t *testing.T) {
	if !unwind.Enabled {
		t.Skip("built with scopedmutex_nounwind")
	}
	m := New()
	assert.Panics(t, func() {
		m.WithLock(func() { panic("boom") })
	})
	assert.False(t, m.IsLocked())
}

func TestRawMutex_ValueForm(t *testing.T) {
	m := New()
	got := traits.WithLock(m, func() string { return "ok" })
	assert.Equal(t, "ok", got)
}
