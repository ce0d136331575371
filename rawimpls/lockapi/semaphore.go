package lockapi

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// semaphoreLocker 把权重为 1 的信号量当作互斥锁使用
type semaphoreLocker struct {
	sem *semaphore.Weighted
}

func (s semaphoreLocker) Lock() {
	// Background 永不取消，Acquire 只会在获得许可后返回
	_ = s.sem.Acquire(context.Background(), 1)
}

func (s semaphoreLocker) Unlock() {
	s.sem.Release(1)
}

func (s semaphoreLocker) TryLock() bool {
	return s.sem.TryAcquire(1)
}

// FromSemaphore 以信号量的 1 个许可作为锁
//
// 容量大于 1 的信号量允许多个持有者并存，此时不再互斥，调用方需自行保证容量为 1。
// 信号量按 FIFO 顺序唤醒等待者，这一公平性只属于该后端。
func FromSemaphore(sem *semaphore.Weighted) *RawMutex {
	return New(semaphoreLocker{sem: sem})
}
