//go:build !tinygo

package critical

import "sync"

var defaultImpl Impl = &globalMutex{}

// globalMutex 标准 Go 运行时上的临界区：所有 goroutine 共享的一把锁
type globalMutex struct {
	mu sync.Mutex
}

func (g *globalMutex) Acquire() RestoreState {
	g.mu.Lock()
	return 0
}

func (g *globalMutex) Release(RestoreState) {
	g.mu.Unlock()
}
