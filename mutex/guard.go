package mutex

import "github.com/ceyewan/scopedmutex/traits"

// Lockable 同时具备两种能力的后端，只有它们可以返回 Guard
type Lockable interface {
	traits.ScopedRawMutex
	traits.RawMutex
}

// Guard 持有锁期间对数据的访问句柄
//
// 与闭包形式不同，释放依赖调用方显式调用 Unlock（通常配合 defer）。
// 多个 Guard 必须按后进先出的顺序释放。
type Guard[R Lockable, T any] struct {
	m        *BlockingMutex[R, T]
	released bool
}

// Lock 阻塞直到获取锁，返回数据句柄
func Lock[R Lockable, T any](m *BlockingMutex[R, T]) *Guard[R, T] {
	m.raw.Lock()
	return &Guard[R, T]{m: m}
}

// TryLock 非阻塞地尝试获取锁
func TryLock[R Lockable, T any](m *BlockingMutex[R, T]) (*Guard[R, T], bool) {
	if !m.raw.TryLock() {
		return nil, false
	}
	return &Guard[R, T]{m: m}, true
}

// Get 返回数据指针，只在 Unlock 之前有效
func (g *Guard[R, T]) Get() *T {
	return &g.m.data
}

// Unlock 释放锁，重复调用无效果
func (g *Guard[R, T]) Unlock() {
	if g.released {
		return
	}
	g.released = true
	g.m.raw.Unlock()
}
