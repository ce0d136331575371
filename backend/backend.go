// Package backend 按配置为集成方构造一个后端实例。
//
// 库代码不应依赖本包：它们对 traits.ScopedRawMutex 或 mutex.BlockingMutex
// 的后端类型参数保持多态。本包面向最终程序，在启动时根据配置文件选择后端，
// 并按需附加日志与指标。需要编译期确定后端的场景直接导入 rawimpls 下的包。
//
// 使用示例:
//
//	raw, err := backend.New(&backend.Config{
//	    Kind:       backend.KindCriticalSection,
//	    Name:       "sensor-buffer",
//	    Instrument: true,
//	}, backend.WithLogger(logger), backend.WithMeter(meter))
//	m := mutex.New(raw, readings)
package backend

import (
	"github.com/ceyewan/scopedmutex/clog"
	"github.com/ceyewan/scopedmutex/instrument"
	"github.com/ceyewan/scopedmutex/metrics"
	"github.com/ceyewan/scopedmutex/rawimpls/cs"
	"github.com/ceyewan/scopedmutex/rawimpls/local"
	"github.com/ceyewan/scopedmutex/rawimpls/lockapi"
	"github.com/ceyewan/scopedmutex/rawimpls/singlecore"
	"github.com/ceyewan/scopedmutex/traits"
	"github.com/ceyewan/scopedmutex/xerrors"
)

// New 根据配置创建后端
func New(cfg *Config, opts ...Option) (traits.ScopedRawMutex, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := &options{
		logger: clog.Discard(),
		meter:  metrics.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.WithNamespace("backend")

	var raw traits.ScopedRawMutex
	switch cfg.Kind {
	case KindCriticalSection:
		raw = cs.New()
	case KindLocal:
		raw = local.New()
	case KindSingleCore:
		logger.Warn("single-core backend selected, correctness depends on single-core deployment",
			clog.String("name", cfg.Name))
		raw = singlecore.AssumeSingleCore(singlecore.WithMask(o.mask))
	case KindLockAPI:
		raw = lockapi.New(o.locker)
	}

	if cfg.Instrument {
		wrapped, err := instrument.Wrap(raw,
			instrument.WithLogger(o.logger),
			instrument.WithMeter(o.meter),
			instrument.WithName(cfg.Name),
			instrument.WithBackend(string(cfg.Kind)),
		)
		if err != nil {
			return nil, xerrors.Wrapf(err, "instrument backend %s", cfg.Name)
		}
		raw = wrapped
	}

	logger.Info("backend created",
		clog.String("name", cfg.Name),
		clog.String("kind", string(cfg.Kind)),
		clog.Bool("instrument", cfg.Instrument),
	)
	return raw, nil
}
