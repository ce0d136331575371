package instrument

import (
	"github.com/ceyewan/scopedmutex/clog"
	"github.com/ceyewan/scopedmutex/metrics"
)

// Option Wrap 的初始化选项
type Option func(*options)

type options struct {
	logger  clog.Logger
	meter   metrics.Meter
	name    string
	backend string
}

// WithLogger 注入日志记录器
// 组件会自动添加 namespace=instrument
func WithLogger(l clog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeter 注入指标 Meter
func WithMeter(m metrics.Meter) Option {
	return func(o *options) {
		if m != nil {
			o.meter = m
		}
	}
}

// WithName 设置锁名称，作为 name 标签
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithBackend 设置后端名称，作为 backend 标签
func WithBackend(backend string) Option {
	return func(o *options) {
		o.backend = backend
	}
}
