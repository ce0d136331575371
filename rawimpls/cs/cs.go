// Package cs 提供基于进程级临界区的 ScopedRawMutex 后端。
//
// 锁状态是一个 taken 标志，它的每次变更都发生在 critical.With 内部，
// 因此在临界区实现覆盖的所有执行上下文之间互斥。
//
// 标准 Go 运行时上，闭包在临界区之外执行，WithLock 通过让出调度自旋等待，
// 多个 goroutine 竞争时会阻塞而不会 panic。TinyGo 上闭包在临界区（中断关闭）
// 内执行，锁被持有时不可能有人释放它，WithLock 直接以 traits.ErrDeadlocked panic。
//
// 零值即可使用：
//
//	var mu cs.RawMutex
//	mu.WithLock(func() { counter++ })
package cs

import (
	"sync/atomic"

	"github.com/ceyewan/scopedmutex/critical"
	"github.com/ceyewan/scopedmutex/traits"
)

var _ traits.ScopedRawMutex = (*RawMutex)(nil)

// Name 后端名称，用于日志、指标与错误信息
const Name = "critical-section"

// RawMutex 基于临界区的原始锁，不可复制
type RawMutex struct {
	taken atomic.Bool
}

// New 返回一个未锁定的 RawMutex，与零值等价
func New() *RawMutex {
	return &RawMutex{}
}

// IsLocked 报告锁当前是否被持有
func (m *RawMutex) IsLocked() bool {
	return m.taken.Load()
}

// take 在临界区内尝试占用标志
func (m *RawMutex) take() bool {
	return critical.With(func(critical.Token) bool {
		if m.taken.Load() {
			return false
		}
		m.taken.Store(true)
		return true
	})
}

func (m *RawMutex) release() {
	critical.With(func(critical.Token) struct{} {
		m.taken.Store(false)
		return struct{}{}
	})
}

func deadlocked() error {
	return traits.Deadlocked(Name)
}
