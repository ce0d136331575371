package singlecore

// Option 配置 AssumeSingleCore 创建的锁
type Option func(*RawMutex)

// WithMask 替换默认的中断屏蔽实现，nil 被忽略
func WithMask(mask Mask) Option {
	return func(m *RawMutex) {
		if mask != nil {
			m.mask = mask
		}
	}
}

// WithContextCheck 设置执行上下文检查
//
// 每次加锁前调用 check，返回 false 时以 ErrWrongContext panic。
// 典型用法是只允许在线程模式（非中断处理程序）下加锁。
func WithContextCheck(check func() bool) Option {
	return func(m *RawMutex) {
		m.inContext = check
	}
}
