//go:build scopedmutex_nounwind

package mutex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceyewan/scopedmutex/rawimpls/local"
)

// 关闭展开保护后 panic 会跳过释放步骤，锁保持被持有
func TestBlockingMutex_NoUnwind_LeavesLockHeld(t *testing.T) {
	m := New(local.New(), 0)

	assert.Panics(t, func() {
		m.WithLock(func(*int) { panic("boom") })
	})

	assert.True(t, m.IsLocked())
	assert.False(t, m.Unwound())
}
