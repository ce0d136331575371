//go:build !tinygo

package cs

import (
	"runtime"

	"github.com/ceyewan/scopedmutex/internal/unwind"
)

// TryWithLock 锁空闲时占用它并调用 f，否则立即返回 false
func (m *RawMutex) TryWithLock(f func()) bool {
	if !m.take() {
		return false
	}
	unwind.Run(f, m.release)
	return true
}

// WithLock 自旋直到占用锁，然后调用 f
//
// 在 f 内部对同一实例调用 WithLock 会永远自旋。
func (m *RawMutex) WithLock(f func()) {
	for !m.take() {
		runtime.Gosched()
	}
	unwind.Run(f, m.release)
}
