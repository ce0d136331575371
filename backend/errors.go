package backend

import "github.com/ceyewan/scopedmutex/xerrors"

var (
	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("backend: config is nil")

	// ErrUnsupportedKind 不支持的后端类型
	ErrUnsupportedKind = xerrors.New("backend: unsupported kind")

	// ErrSingleCoreNotAssumed 选择单核后端但未确认单核前提
	ErrSingleCoreNotAssumed = xerrors.New("backend: single-core kind requires assume_single_core")
)
