//go:build tinygo

package singlecore

import "runtime/interrupt"

type interruptMask struct{}

func (interruptMask) Disable() State {
	return State(interrupt.Disable())
}

func (interruptMask) Restore(state State) {
	interrupt.Restore(interrupt.State(state))
}

func defaultMask() Mask {
	return interruptMask{}
}
