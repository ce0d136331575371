// Package clog 为 scopedmutex 提供基于 slog 的结构化日志组件。
//
// 锁路径本身从不打日志；只有装配阶段（backend.New）和可选的 instrument
// 装饰器会通过注入的 Logger 输出。默认使用 Discard()，不产生任何开销。
//
// 基本使用：
//
//	logger, _ := clog.New(&clog.Config{Level: "debug", Format: "json"})
//	logger.Info("backend selected", clog.String("kind", "critical-section"))
package clog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ceyewan/scopedmutex/xerrors"
)

// New 创建一个新的 Logger 实例
//
// config 为 nil 时使用 NewDevDefaultConfig。
func New(config *Config, opts ...Option) (Logger, error) {
	if config == nil {
		config = NewDevDefaultConfig()
	}
	if err := config.validate(); err != nil {
		return nil, xerrors.Wrap(err, "invalid config")
	}

	o := applyOptions(opts...)
	w := o.writer
	if w == nil {
		var err error
		w, err = resolveWriter(config.Output)
		if err != nil {
			return nil, xerrors.Wrapf(err, "open log output %s", config.Output)
		}
	}

	return newLogger(newHandler(config, w), o), nil
}

// Default 返回写入 stderr 的 info 级别 console Logger，创建失败时退化为 Discard。
func Default() Logger {
	logger, err := New(&Config{Level: "info", Format: "console", Output: "stderr"})
	if err != nil {
		return Discard()
	}
	return logger
}

func resolveWriter(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	}
}

func newHandler(config *Config, w io.Writer) slog.Handler {
	level, _ := ParseLevel(config.Level)
	opts := &slog.HandlerOptions{
		AddSource: config.AddSource,
		Level:     level.slogLevel(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().Format(TimeFormat))
			}
			return a
		},
	}
	if strings.ToLower(config.Format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
