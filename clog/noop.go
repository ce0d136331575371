package clog

import "context"

type noopLogger struct{}

// Discard 创建一个静默的 Logger 实例
func Discard() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...Field)                          {}
func (noopLogger) Info(string, ...Field)                           {}
func (noopLogger) Warn(string, ...Field)                           {}
func (noopLogger) Error(string, ...Field)                          {}
func (noopLogger) DebugContext(context.Context, string, ...Field)  {}
func (noopLogger) InfoContext(context.Context, string, ...Field)   {}
func (noopLogger) WarnContext(context.Context, string, ...Field)   {}
func (noopLogger) ErrorContext(context.Context, string, ...Field)  {}
func (l noopLogger) With(...Field) Logger                          { return l }
func (l noopLogger) WithNamespace(...string) Logger                { return l }
