// Package instrument 为任意 ScopedRawMutex 附加日志与指标。
//
// 包装后的锁仍然实现 traits.ScopedRawMutex，语义不变：
// 竞争被计数并在 Debug 级别记录；持有期间的 panic 被计数、
// 在 Error 级别记录后原样继续传播。
//
// 日志与指标在持有锁期间产生，适用于标准 Go 运行时；
// 在中断屏蔽的后端上使用会延长屏蔽时间。
package instrument

import (
	"context"
	"time"

	"github.com/ceyewan/scopedmutex/clog"
	"github.com/ceyewan/scopedmutex/metrics"
	"github.com/ceyewan/scopedmutex/traits"
	"github.com/ceyewan/scopedmutex/xerrors"
)

var _ traits.ScopedRawMutex = (*Mutex)(nil)

// ErrRawNil 被包装的后端为空
var ErrRawNil = xerrors.New("instrument: raw mutex is nil")

// Mutex 带观测能力的 ScopedRawMutex
type Mutex struct {
	raw    traits.ScopedRawMutex
	logger clog.Logger

	acquired  metrics.Counter
	contended metrics.Counter
	panicked  metrics.Counter
	held      metrics.Gauge
	hold      metrics.Histogram

	base   []metrics.Label
	withOp []metrics.Label
	tryOp  []metrics.Label
}

// Wrap 包装 raw，未注入 Logger/Meter 时使用 noop 实现
func Wrap(raw traits.ScopedRawMutex, opts ...Option) (*Mutex, error) {
	if raw == nil {
		return nil, ErrRawNil
	}

	o := &options{
		logger:  clog.Discard(),
		meter:   metrics.Discard(),
		name:    "default",
		backend: "unknown",
	}
	for _, opt := range opts {
		opt(o)
	}

	m := &Mutex{
		raw:    raw,
		logger: o.logger.WithNamespace("instrument").With(clog.String(LabelName, o.name), clog.String(LabelBackend, o.backend)),
		base: []metrics.Label{
			metrics.L(LabelBackend, o.backend),
			metrics.L(LabelName, o.name),
		},
	}
	m.withOp = append(append([]metrics.Label{}, m.base...), metrics.L(LabelOperation, operationWith))
	m.tryOp = append(append([]metrics.Label{}, m.base...), metrics.L(LabelOperation, operationTry))

	var err error
	if m.acquired, err = o.meter.Counter(MetricLockAcquired, "锁获取成功次数"); err != nil {
		return nil, xerrors.Wrap(err, "create acquired counter")
	}
	if m.contended, err = o.meter.Counter(MetricLockContended, "锁竞争次数"); err != nil {
		return nil, xerrors.Wrap(err, "create contended counter")
	}
	if m.panicked, err = o.meter.Counter(MetricLockPanicked, "持有锁期间 panic 次数"); err != nil {
		return nil, xerrors.Wrap(err, "create panicked counter")
	}
	if m.held, err = o.meter.Gauge(MetricLockHeld, "当前被持有的锁数量"); err != nil {
		return nil, xerrors.Wrap(err, "create held gauge")
	}
	if m.hold, err = o.meter.Histogram(MetricLockHoldDuration, "锁持有时长", metrics.WithUnit("s")); err != nil {
		return nil, xerrors.Wrap(err, "create hold duration histogram")
	}
	return m, nil
}

// TryWithLock 委托给被包装的后端，失败时记录一次竞争
func (m *Mutex) TryWithLock(f func()) bool {
	ok := m.raw.TryWithLock(func() {
		m.run(f, m.tryOp)
	})
	if !ok {
		m.contended.Inc(context.Background(), m.tryOp...)
		m.logger.Debug("lock contended", clog.String(LabelOperation, operationTry))
	}
	return ok
}

// WithLock 委托给被包装的后端，进入时锁已被持有则记录一次竞争
func (m *Mutex) WithLock(f func()) {
	if m.raw.IsLocked() {
		m.contended.Inc(context.Background(), m.withOp...)
		m.logger.Debug("lock contended, waiting", clog.String(LabelOperation, operationWith))
	}
	m.raw.WithLock(func() {
		m.run(f, m.withOp)
	})
}

// IsLocked 报告被包装的后端是否被持有
func (m *Mutex) IsLocked() bool {
	return m.raw.IsLocked()
}

// Unwrap 返回被包装的后端
func (m *Mutex) Unwrap() traits.ScopedRawMutex {
	return m.raw
}

func (m *Mutex) run(f func(), labels []metrics.Label) {
	ctx := context.Background()
	m.acquired.Inc(ctx, labels...)
	m.held.Inc(ctx, m.base...)
	start := time.Now()

	completed := false
	defer func() {
		m.held.Dec(ctx, m.base...)
		m.hold.Record(ctx, time.Since(start).Seconds(), m.base...)
		if completed {
			return
		}
		// runtime.Goexit 时 recover 返回 nil，不拦截
		if r := recover(); r != nil {
			m.panicked.Inc(ctx, labels...)
			err := xerrors.FromPanic(r)
			errField := clog.Error(err)
			if code := xerrors.GetCode(err); code != "" {
				errField = clog.ErrorWithCode(err, code)
			}
			m.logger.Error("panic while holding lock",
				errField,
				clog.Duration("held", time.Since(start)),
			)
			panic(r)
		}
	}()

	f()
	completed = true
}
