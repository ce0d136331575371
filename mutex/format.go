//go:build scopedmutex_fmt

package mutex

import "fmt"

// String 锁空闲时短暂获取它以打印数据，被持有时显示 <locked>
func (m *BlockingMutex[R, T]) String() string {
	out := "BlockingMutex{data: <locked>}"
	m.raw.TryWithLock(func() {
		out = fmt.Sprintf("BlockingMutex{data: %v}", m.data)
	})
	return out
}
