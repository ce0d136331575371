package singlecore

// State Disable 返回、Restore 使用的屏蔽前状态
type State uintptr

// Mask 本核中断屏蔽原语
//
// Disable 关闭中断并返回之前的状态，Restore 恢复该状态。调用严格嵌套。
type Mask interface {
	Disable() State
	Restore(state State)
}

// NopMask 不做任何事的屏蔽实现，用于没有中断控制器的宿主环境
type NopMask struct{}

func (NopMask) Disable() State { return 0 }
func (NopMask) Restore(State)  {}
