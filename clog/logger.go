package clog

import "context"

// Logger 日志接口，提供结构化日志记录功能
//
// 创建子 Logger：
//
//	childLogger := logger.With(clog.String("backend", "cs"))
//	namespacedLogger := logger.WithNamespace("instrument")
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	DebugContext(ctx context.Context, msg string, fields ...Field)
	InfoContext(ctx context.Context, msg string, fields ...Field)
	WarnContext(ctx context.Context, msg string, fields ...Field)
	ErrorContext(ctx context.Context, msg string, fields ...Field)

	// With 创建一个带有预设字段的子 Logger
	With(fields ...Field) Logger

	// WithNamespace 创建一个扩展命名空间的子 Logger
	//
	// 命名空间以 "." 连接，例如 "scopedmutex.backend"
	WithNamespace(parts ...string) Logger
}
