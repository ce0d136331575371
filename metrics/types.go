// Package metrics 为 scopedmutex 提供统一的指标收集能力。
// 基于 OpenTelemetry 标准构建，通过 Prometheus exporter 暴露。
//
// 快速开始：
//
//	meter, err := metrics.New(&metrics.Config{
//	    Enabled:     true,
//	    ServiceName: "sensor-hub",
//	    Port:        9090,
//	    Path:        "/metrics",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer meter.Shutdown(ctx)
//
//	counter, _ := meter.Counter("scopedmutex_lock_acquired_total", "锁获取成功次数")
//	counter.Inc(ctx, metrics.L("backend", "critical-section"))
package metrics

import (
	"context"
	"net/http"
)

// Counter 计数器接口，记录只增不减的累计值
type Counter interface {
	// Inc 将计数器增加 1
	Inc(ctx context.Context, labels ...Label)

	// Add 将计数器增加给定的值，负数会被忽略
	Add(ctx context.Context, val float64, labels ...Label)
}

// Gauge 仪表盘接口，记录可以任意增减的瞬时值
type Gauge interface {
	Set(ctx context.Context, val float64, labels ...Label)
	Inc(ctx context.Context, labels ...Label)
	Dec(ctx context.Context, labels ...Label)
}

// Histogram 直方图接口，记录值的分布情况
type Histogram interface {
	Record(ctx context.Context, val float64, labels ...Label)
}

// Meter 指标创建工厂接口
//
// Meter 创建的指标是并发安全的，可以在多个 goroutine 中使用
type Meter interface {
	Counter(name string, desc string, opts ...MetricOption) (Counter, error)
	Gauge(name string, desc string, opts ...MetricOption) (Gauge, error)
	Histogram(name string, desc string, opts ...MetricOption) (Histogram, error)

	// Handler 返回以 Prometheus 文本格式暴露本 Meter 指标的 HTTP Handler
	Handler() http.Handler

	// Shutdown 关闭 Meter，刷新所有指标
	Shutdown(ctx context.Context) error
}

// MetricOption 指标配置选项函数类型
type MetricOption func(*MetricOptions)

// MetricOptions 指标选项
type MetricOptions struct {
	// Unit 指标的单位，建议使用 UCUM 单位代码，例如 "s"、"By"
	Unit string
}

// WithUnit 设置指标的单位
func WithUnit(unit string) MetricOption {
	return func(o *MetricOptions) {
		o.Unit = unit
	}
}

// Label 指标标签
type Label struct {
	Key   string
	Value string
}

// L 便捷构造函数，创建一个 Label 实例
func L(key, value string) Label {
	return Label{Key: key, Value: value}
}
