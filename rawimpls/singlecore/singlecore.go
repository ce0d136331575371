// Package singlecore 提供通过屏蔽本核中断实现互斥的 ScopedRawMutex 后端。
//
// 该后端不安全：它只屏蔽当前核心的中断，正确性依赖于"程序只在单核上运行"
// 这一前提，而这个前提不会在运行时检查。多核部署下使用它是正确性错误，
// 不会得到任何报错。因此它只能通过 AssumeSingleCore 构造，调用即表示集成方
// 承诺该前提成立。
//
// 闭包在中断屏蔽期间执行，应当尽量短小。
package singlecore

import (
	"sync/atomic"

	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/traits"
)

var _ traits.ScopedRawMutex = (*RawMutex)(nil)

// Name 后端名称
const Name = "single-core"

// RawMutex 单核中断屏蔽原始锁
type RawMutex struct {
	taken     atomic.Bool
	mask      Mask
	inContext func() bool
}

// AssumeSingleCore 创建单核中断屏蔽锁
//
// 调用方必须保证：所有可能访问该锁的执行上下文都运行在同一个核心上，
// 且除中断以外没有其他抢占来源。违反该前提的行为未定义。
func AssumeSingleCore(opts ...Option) *RawMutex {
	m := &RawMutex{mask: defaultMask()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TryWithLock 屏蔽中断后检查锁，空闲时在屏蔽期间调用 f
func (m *RawMutex) TryWithLock(f func()) bool {
	m.checkContext()
	mask := m.masker()
	state := mask.Disable()
	if m.taken.Load() {
		mask.Restore(state)
		return false
	}
	m.taken.Store(true)
	unwind.Run(f, func() {
		m.taken.Store(false)
		mask.Restore(state)
	})
	return true
}

// WithLock 屏蔽中断后调用 f
//
// 单核上锁已被持有只可能是重入，此时以 traits.ErrDeadlocked panic。
func (m *RawMutex) WithLock(f func()) {
	if !m.TryWithLock(f) {
		panic(traits.Deadlocked(Name))
	}
}

// IsLocked 报告锁是否被持有
func (m *RawMutex) IsLocked() bool {
	return m.taken.Load()
}

// masker 零值 RawMutex 使用平台默认屏蔽实现
func (m *RawMutex) masker() Mask {
	if m.mask == nil {
		return defaultMask()
	}
	return m.mask
}

func (m *RawMutex) checkContext() {
	if m.inContext != nil && !m.inContext() {
		panic(ErrWrongContext)
	}
}
