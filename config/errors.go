package config

import "github.com/ceyewan/scopedmutex/xerrors"

var (
	// ErrValidationFailed 验证失败
	ErrValidationFailed = xerrors.New("config: validation failed")

	// ErrNotLoaded 在 Load 之前调用 Watch
	ErrNotLoaded = xerrors.New("config: not loaded")
)
