// Package traits 定义 scopedmutex 的两层锁能力，供可复用的库代码依赖。
//
// 库代码应当只依赖本包（或 mutex 包），对具体后端保持多态；
// 最终集成方再按部署目标选择恰好一个后端（见 rawimpls/* 与 backend 包）。
//
//   - ScopedRawMutex：闭包作用域的锁，释放一定发生在调用返回之前。
//   - RawMutex：与通用锁生态兼容的 Lock/Unlock 配对接口，安全性更弱，
//     由调用方保证严格的后进先出配对。
//
// 两种能力都禁止重入：在闭包内再次锁同一个后端实例，
// 要么死锁，要么（单核后端）是未定义行为。这不是可恢复的错误。
package traits

// ScopedRawMutex 闭包作用域的原始锁
//
// "原始" 指它不持有被保护的数据，只实现互斥机制；
// 需要保护数据时使用 mutex.BlockingMutex。
//
// 实现必须保证：持有期间，在其互斥范围内不会有第二次获取成功；
// 获取路径不分配内存，也不依赖操作系统调度进行无限期阻塞。
type ScopedRawMutex interface {
	// TryWithLock 非阻塞地尝试获取锁
	//
	// 锁不可用时立即返回 false，f 不会被调用，也没有任何副作用。
	// 获取成功时恰好调用 f 一次，随后释放锁并返回 true；
	// 在默认构建下 f panic 时锁同样会被释放，panic 继续向上传播。
	TryWithLock(f func()) bool

	// WithLock 获取锁（自旋、屏蔽中断或其他后端相关方式）后调用 f
	//
	// 在能够确定已经死锁的后端上（例如单执行上下文），
	// 遇到锁已被持有时以 ErrDeadlocked panic，而不是永远等待。
	// 不得在 f 内部对同一实例再次调用。
	WithLock(f func())

	// IsLocked 报告锁当前是否被持有
	//
	// 结果仅用于诊断，调用返回时可能已经过期。
	IsLocked() bool
}

// RawMutex 通用锁兼容能力：可以在任意时刻自由加锁、解锁的原始锁
//
// Lock 对应 acquire，Unlock 对应 release。每次成功的 Lock/TryLock
// 必须在任何外层锁释放之前，被恰好一次 Unlock 匹配，且期间不得重入本实例。
// 非后进先出的交错调用结果未定义。
//
// 普通用户代码应优先使用 ScopedRawMutex；RawMutex 存在是为了让期望
// Lock/Unlock 的外部容器也能使用这些后端。任何 RawMutex 都可以通过
// Scoped 转换为 ScopedRawMutex。
type RawMutex interface {
	// Lock 阻塞直到获取锁
	Lock()

	// TryLock 非阻塞地尝试获取锁，成功返回 true
	TryLock() bool

	// Unlock 释放锁，只能在当前上下文持有锁时调用
	Unlock()

	// IsLocked 报告锁当前是否被持有
	IsLocked() bool
}

// TryWithLock 是 ScopedRawMutex.TryWithLock 的带返回值版本
//
// 获取失败时返回 R 的零值和 false。
func TryWithLock[R any](m ScopedRawMutex, f func() R) (R, bool) {
	var ret R
	ok := m.TryWithLock(func() {
		ret = f()
	})
	return ret, ok
}

// WithLock 是 ScopedRawMutex.WithLock 的带返回值版本
func WithLock[R any](m ScopedRawMutex, f func() R) R {
	var ret R
	m.WithLock(func() {
		ret = f()
	})
	return ret
}
