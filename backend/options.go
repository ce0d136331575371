package backend

import (
	"github.com/ceyewan/scopedmutex/clog"
	"github.com/ceyewan/scopedmutex/metrics"
	"github.com/ceyewan/scopedmutex/rawimpls/lockapi"
	"github.com/ceyewan/scopedmutex/rawimpls/singlecore"
)

// Option 后端初始化选项函数
type Option func(*options)

type options struct {
	logger clog.Logger
	meter  metrics.Meter
	locker lockapi.Locker
	mask   singlecore.Mask
}

// WithLogger 注入日志记录器
// 组件会自动添加 namespace=backend
func WithLogger(l clog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeter 注入指标 Meter，仅在 Config.Instrument 为 true 时使用
func WithMeter(m metrics.Meter) Option {
	return func(o *options) {
		if m != nil {
			o.meter = m
		}
	}
}

// WithLocker 为 lock-api 后端注入外部锁，未注入时使用内部 sync.Mutex
func WithLocker(l lockapi.Locker) Option {
	return func(o *options) {
		if l != nil {
			o.locker = l
		}
	}
}

// WithMask 为 single-core 后端注入中断屏蔽实现
func WithMask(m singlecore.Mask) Option {
	return func(o *options) {
		if m != nil {
			o.mask = m
		}
	}
}
