package instrument

// Metrics 指标常量定义
const (
	// MetricLockAcquired 锁获取成功次数 (Counter)
	MetricLockAcquired = "scopedmutex_lock_acquired_total"

	// MetricLockContended 锁竞争次数 (Counter)
	// TryWithLock 返回 false，或 WithLock 进入时锁已被持有
	MetricLockContended = "scopedmutex_lock_contended_total"

	// MetricLockPanicked 持有锁期间闭包 panic 的次数 (Counter)
	MetricLockPanicked = "scopedmutex_lock_panicked_total"

	// MetricLockHeld 当前被持有的锁数量 (Gauge)
	MetricLockHeld = "scopedmutex_lock_held"

	// MetricLockHoldDuration 锁持有时长 (Histogram)
	MetricLockHoldDuration = "scopedmutex_lock_hold_duration_seconds"

	// LabelBackend 后端类型标签
	LabelBackend = "backend"

	// LabelName 锁名称标签
	LabelName = "name"

	// LabelOperation 操作类型标签 (with | try)
	LabelOperation = "operation"
)

const (
	operationWith = "with"
	operationTry  = "try"
)
