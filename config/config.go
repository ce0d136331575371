package config

import (
	"context"

	"github.com/ceyewan/scopedmutex/xerrors"
)

// New 创建配置加载器，尚未读取任何配置
func New(opts ...Option) (Loader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newLoader(o), nil
}

// Load 创建加载器并立即加载
func Load(ctx context.Context, opts ...Option) (Loader, error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// MustLoad 类似 Load，但出错时 panic，仅用于初始化阶段
func MustLoad(opts ...Option) Loader {
	return xerrors.Must(Load(context.Background(), opts...))
}
