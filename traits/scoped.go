package traits

import "github.com/ceyewan/scopedmutex/internal/unwind"

// TryWithRaw 在任意 RawMutex 上实现 TryWithLock 语义
//
// 同时实现两种能力的后端可以直接把方法委托给这里。
func TryWithRaw(m RawMutex, f func()) bool {
	if !m.TryLock() {
		return false
	}
	unwind.Run(f, m.Unlock)
	return true
}

// WithRaw 在任意 RawMutex 上实现 WithLock 语义
func WithRaw(m RawMutex, f func()) {
	m.Lock()
	unwind.Run(f, m.Unlock)
}

// Scoped 把 RawMutex 适配为 ScopedRawMutex
//
// 如果 raw 本身已经实现了 ScopedRawMutex，直接返回它。
func Scoped(raw RawMutex) ScopedRawMutex {
	if s, ok := raw.(ScopedRawMutex); ok {
		return s
	}
	return scoped{raw: raw}
}

type scoped struct {
	raw RawMutex
}

func (s scoped) TryWithLock(f func()) bool {
	return TryWithRaw(s.raw, f)
}

func (s scoped) WithLock(f func()) {
	WithRaw(s.raw, f)
}

func (s scoped) IsLocked() bool {
	return s.raw.IsLocked()
}
