package singlecore

import "github.com/ceyewan/scopedmutex/xerrors"

// ErrWrongContext 在上下文检查不允许的位置加锁
var ErrWrongContext = xerrors.New("single-core backend: lock used outside permitted execution context")
