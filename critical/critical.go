// Package critical 提供进程级临界区原语。
//
// 临界区保证在其范围内没有其他竞争的执行上下文同时运行。具体实现在构建时选择：
//
//   - 标准 Go 运行时：一把进程级互斥锁。该实现不可嵌套。
//   - TinyGo（最小运行时）：runtime/interrupt 关闭并恢复本核中断，可以嵌套。
//
// 集成方可以在首次使用前通过 Set 安装平台自己的实现。
package critical

import (
	"sync/atomic"

	"github.com/ceyewan/scopedmutex/xerrors"
)

var (
	// ErrAlreadyInUse 临界区已被使用后再调用 Set
	ErrAlreadyInUse = xerrors.New("critical: implementation already in use")

	// ErrNilImpl Set 传入了 nil
	ErrNilImpl = xerrors.New("critical: nil implementation")
)

// RestoreState 由 Acquire 返回、交还给 Release 的不透明状态
//
// 对中断实现而言它保存了进入前的中断屏蔽状态。
type RestoreState uintptr

// Token 证明持有者正运行在临界区内
//
// 只有 With 能构造非零 Token；它不能被保存到临界区之外使用。
type Token struct {
	_ struct{}
}

// Impl 平台临界区实现
//
// Acquire 与 Release 必须严格配对，且 Release 使用对应 Acquire 的返回值。
type Impl interface {
	Acquire() RestoreState
	Release(state RestoreState)
}

type holder struct {
	impl Impl
}

// installed 为 nil 表示尚未使用也未安装；首次使用时固定为默认实现，
// 之后 Set 的 CompareAndSwap 必然失败。
var installed atomic.Pointer[holder]

// Set 安装自定义的临界区实现，只能在首次 Acquire/With 之前调用一次
func Set(impl Impl) error {
	if impl == nil {
		return ErrNilImpl
	}
	if !installed.CompareAndSwap(nil, &holder{impl: impl}) {
		return ErrAlreadyInUse
	}
	return nil
}

func current() Impl {
	if h := installed.Load(); h != nil {
		return h.impl
	}
	installed.CompareAndSwap(nil, &holder{impl: defaultImpl})
	return installed.Load().impl
}

// Acquire 进入临界区，返回值必须传给匹配的 Release
func Acquire() RestoreState {
	return current().Acquire()
}

// Release 退出由 Acquire 进入的临界区
func Release(state RestoreState) {
	current().Release(state)
}

// With 在临界区内调用 f 并返回其结果，f panic 时同样会退出临界区
func With[R any](f func(Token) R) R {
	impl := current()
	state := impl.Acquire()
	defer impl.Release(state)
	return f(Token{})
}
