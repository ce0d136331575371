package singlecore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/traits"
	"github.com/ceyewan/scopedmutex/xerrors"
)

// recordingMask 记录屏蔽深度，用来验证 Disable/Restore 配对
type recordingMask struct {
	depth    int
	maxDepth int
	restored []State
}

func (r *recordingMask) Disable() State {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
	return State(r.depth)
}

func (r *recordingMask) Restore(state State) {
	r.restored = append(r.restored, state)
	r.depth--
}

func TestAssumeSingleCore_TryWithLock(t *testing.T) {
	mask := &recordingMask{}
	m := AssumeSingleCore(WithMask(mask))
	value := 0

	ok := m.TryWithLock(func() {
		assert.Equal(t, 1, mask.depth, "闭包应在中断屏蔽期间执行")
		value = 1
		assert.False(t, m.TryWithLock(func() { value = 2 }))
	})

	require.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 0, mask.depth)
	assert.Equal(t, 2, mask.maxDepth)
	assert.Equal(t, []State{2, 1}, mask.restored)
	assert.False(t, m.IsLocked())
}

func TestAssumeSingleCore_WithLock_Reentrant(t *testing.T) {
	mask := &recordingMask{}
	m := AssumeSingleCore(WithMask(mask))

	var recovered any
	m.WithLock(func() {
		defer func() { recovered = recover() }()
		m.WithLock(func() {})
	})

	err, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, errors.Is(err, traits.ErrDeadlocked))
	assert.Equal(t, traits.CodeDeadlocked, xerrors.GetCode(err))
	assert.Equal(t, 0, mask.depth)
	assert.False(t, m.IsLocked())
}

func TestAssumeSingleCore_ContextCheck(t *testing.T) {
	threadMode := false
	m := AssumeSingleCore(WithContextCheck(func() bool { return threadMode }))

	assert.PanicsWithValue(t, ErrWrongContext, func() {
		m.TryWithLock(func() {})
	})

	threadMode = true
	assert.True(t, m.TryWithLock(func() {}))
}

func TestAssumeSingleCore_RestoresMaskOnPanic(t *testing.T) {
	if !unwind.Enabled {
		t.Skip("built with scopedmutex_nounwind")
	}
	mask := &recordingMask{}
	m := AssumeSingleCore(WithMask(mask))

	assert.Panics(t, func() {
		m.WithLock(func() { panic("boom") })
	})
	assert.Equal(t, 0, mask.depth)
	assert.False(t, m.IsLocked())
}

func TestAssumeSingleCore_DefaultMask(t *testing.T) {
	m := AssumeSingleCore(WithMask(nil))
	assert.NotNil(t, m.mask)
	assert.Equal(t, 3, traits.WithLock(m, func() int { return 3 }))
}
