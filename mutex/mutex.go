// Package mutex 提供把一个后端与被保护数据绑定在一起的容器。
//
// BlockingMutex 是数据唯一的访问入口：数据只在闭包执行期间可变，
// 闭包拿到的 *T 不得逃逸到闭包之外。
//
// 基本用法：
//
//	m := mutex.NewInit[cs.RawMutex](0)
//	mutex.With(m, func(v *int) int {
//	    *v++
//	    return *v
//	})
//
// 库代码应当对后端类型保持泛型，由最终集成方选择后端。
package mutex

import (
	"sync/atomic"

	"github.com/ceyewan/scopedmutex/internal/unwind"
	"github.com/ceyewan/scopedmutex/traits"
)

// BlockingMutex 由后端 R 保护的 T 类型数据，创建后不可复制
//
// 后端实例只由容器加锁和解锁，不对外暴露，保证获取与释放始终配对。
type BlockingMutex[R traits.ScopedRawMutex, T any] struct {
	raw     R
	data    T
	unwound atomic.Bool
}

// New 用给定的后端实例和初始值创建容器
func New[R traits.ScopedRawMutex, T any](raw R, val T) *BlockingMutex[R, T] {
	return &BlockingMutex[R, T]{raw: raw, data: val}
}

// NewInit 为零值即可用的后端创建容器，后端实例由容器自行分配
//
//	m := mutex.NewInit[lockapi.RawMutex](map[string]int{})
func NewInit[B any, P interface {
	*B
	traits.ScopedRawMutex
}, T any](val T) *BlockingMutex[P, T] {
	return New[P, T](P(new(B)), val)
}

// WithLock 通过后端的 WithLock 获取锁，并把数据的可变视图交给 f
func (m *BlockingMutex[R, T]) WithLock(f func(*T)) {
	m.raw.WithLock(func() {
		m.call(f)
	})
}

// TryWithLock 非阻塞版本，锁不可用时返回 false 且不调用 f
func (m *BlockingMutex[R, T]) TryWithLock(f func(*T)) bool {
	return m.raw.TryWithLock(func() {
		m.call(f)
	})
}

// call 调用 f；f 没有正常返回时（panic 或 runtime.Goexit）标记容器
func (m *BlockingMutex[R, T]) call(f func(*T)) {
	if !unwind.Enabled {
		f(&m.data)
		return
	}
	completed := false
	defer func() {
		if !completed {
			m.unwound.Store(true)
		}
	}()
	f(&m.data)
	completed = true
}

// IsLocked 报告后端当前是否被持有，仅用于诊断
func (m *BlockingMutex[R, T]) IsLocked() bool {
	return m.raw.IsLocked()
}

// GetMut 不加锁直接返回数据指针
//
// 调用方必须保证此时没有其他上下文能访问该容器，例如容器尚未被共享。
func (m *BlockingMutex[R, T]) GetMut() *T {
	return &m.data
}

// IntoInner 不加锁取出数据，之后不应再使用容器
func (m *BlockingMutex[R, T]) IntoInner() T {
	return m.data
}

// Unwound 报告是否有闭包在持有锁期间 panic 退出
//
// 后端已在展开过程中释放，但数据可能处于闭包写了一半的状态。
// 使用 scopedmutex_nounwind 构建时始终为 false。
func (m *BlockingMutex[R, T]) Unwound() bool {
	return m.unwound.Load()
}

// ClearUnwound 在调用方确认数据一致后清除 panic 标记
func (m *BlockingMutex[R, T]) ClearUnwound() {
	m.unwound.Store(false)
}

// With 是 WithLock 的带返回值版本
func With[R traits.ScopedRawMutex, T, U any](m *BlockingMutex[R, T], f func(*T) U) U {
	var ret U
	m.WithLock(func(v *T) {
		ret = f(v)
	})
	return ret
}

// TryWith 是 TryWithLock 的带返回值版本，获取失败时返回 U 的零值和 false
func TryWith[R traits.ScopedRawMutex, T, U any](m *BlockingMutex[R, T], f func(*T) U) (U, bool) {
	var ret U
	ok := m.TryWithLock(func(v *T) {
		ret = f(v)
	})
	return ret, ok
}
