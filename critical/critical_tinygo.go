//go:build tinygo

package critical

import "runtime/interrupt"

var defaultImpl Impl = interruptMask{}

// interruptMask 通过屏蔽本核中断实现临界区，可嵌套
type interruptMask struct{}

func (interruptMask) Acquire() RestoreState {
	return RestoreState(interrupt.Disable())
}

func (interruptMask) Release(state RestoreState) {
	interrupt.Restore(interrupt.State(state))
}
