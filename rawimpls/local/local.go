// Package local 提供只在单个执行上下文内使用的 ScopedRawMutex 后端。
//
// 它只有一个持有标志，不做任何同步，因此不能在多个 goroutine 之间共享。
// 在单一上下文中锁被持有只可能是重入，WithLock 会以 traits.ErrDeadlocked panic。
package local

import (
	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/traits"
)

var _ traits.ScopedRawMutex = (*RawMutex)(nil)

// Name 后端名称
const Name = "local"

// RawMutex 单执行上下文的原始锁，零值可用
type RawMutex struct {
	taken bool
}

// New 返回一个未锁定的 RawMutex
func New() *RawMutex {
	return &RawMutex{}
}

// TryWithLock 锁空闲时调用 f 并返回 true
func (m *RawMutex) TryWithLock(f func()) bool {
	if m.taken {
		return false
	}
	m.taken = true
	unwind.Run(f, m.release)
	return true
}

// WithLock 调用 f；锁已被持有时以 traits.ErrDeadlocked panic
func (m *RawMutex) WithLock(f func()) {
	if m.taken {
		panic(traits.Deadlocked(Name))
	}
	m.taken = true
	unwind.Run(f, m.release)
}

// IsLocked 报告锁是否被持有
func (m *RawMutex) IsLocked() bool {
	return m.taken
}

func (m *RawMutex) release() {
	m.taken = false
}
