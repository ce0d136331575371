// Package lockapi 把通用锁生态中的锁适配为 scopedmutex 后端。
//
// 任何提供 Lock/Unlock/TryLock 的类型（例如 *sync.Mutex）都可以包装为
// RawMutex，它同时实现 traits.RawMutex 与 traits.ScopedRawMutex。
// 零值包装一把内部的 sync.Mutex，可以直接使用。
package lockapi

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/ceyewan/scopedmutex/traits"
)

var (
	_ traits.RawMutex       = (*RawMutex)(nil)
	_ traits.ScopedRawMutex = (*RawMutex)(nil)
)

// Name 后端名称
const Name = "lock-api"

// Locker 通用锁生态的最小接口，*sync.Mutex 与 *sync.RWMutex 均满足
type Locker interface {
	sync.Locker
	TryLock() bool
}

// RawMutex 包装外部锁的原始锁
//
// 外部锁自身不暴露持有状态，RawMutex 额外维护一个 held 标志供 IsLocked 使用。
type RawMutex struct {
	inner Locker
	own   sync.Mutex
	held  atomic.Bool
}

// New 包装外部锁；l 为 nil（包括带类型的 nil 指针）时使用内部 sync.Mutex
func New(l Locker) *RawMutex {
	if isNil(l) {
		return &RawMutex{}
	}
	return &RawMutex{inner: l}
}

func isNil(l Locker) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (m *RawMutex) locker() Locker {
	if m.inner != nil {
		return m.inner
	}
	return &m.own
}

// Lock 阻塞直到获取底层锁
func (m *RawMutex) Lock() {
	m.locker().Lock()
	m.held.Store(true)
}

// TryLock 非阻塞地尝试获取底层锁
func (m *RawMutex) TryLock() bool {
	if !m.locker().TryLock() {
		return false
	}
	m.held.Store(true)
	return true
}

// Unlock 释放底层锁
func (m *RawMutex) Unlock() {
	m.held.Store(false)
	m.locker().Unlock()
}

// IsLocked 报告锁是否被持有
func (m *RawMutex) IsLocked() bool {
	return m.held.Load()
}

// TryWithLock 获取成功时调用 f，并在返回前释放
func (m *RawMutex) TryWithLock(f func()) bool {
	return traits.TryWithRaw(m, f)
}

// WithLock 获取底层锁后调用 f
func (m *RawMutex) WithLock(f func()) {
	traits.WithRaw(m, f)
}
