//go:build tinygo

package cs

import (
	"github.com/ceyewan/scopedmutex/critical"
	"github.com/ceyewan/scopedmutex/internal/unwind"
)

// TryWithLock 在临界区内检查并占用锁，然后在临界区内调用 f
func (m *RawMutex) TryWithLock(f func()) bool {
	return critical.With(func(critical.Token) bool {
		if m.taken.Load() {
			return false
		}
		m.taken.Store(true)
		unwind.Run(f, func() { m.taken.Store(false) })
		return true
	})
}

// WithLock 在临界区内调用 f；锁已被持有时以 traits.ErrDeadlocked panic
func (m *RawMutex) WithLock(f func()) {
	critical.With(func(critical.Token) struct{} {
		if m.taken.Load() {
			panic(deadlocked())
		}
		m.taken.Store(true)
		unwind.Run(f, func() { m.taken.Store(false) })
		return struct{}{}
	})
}
