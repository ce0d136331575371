package traits

import "github.com/ceyewan/scopedmutex/xerrors"

// CodeDeadlocked 死锁 panic 携带的错误码，可用 xerrors.GetCode 提取
const CodeDeadlocked = "DEADLOCK"

// ErrDeadlocked 后端确定当前获取永远不会成功时使用的 panic 值
//
// 例如单执行上下文的后端在闭包内被重入：持有者不可能在等待期间释放。
// 后端通过 Deadlocked 附加后端名称与错误码，可用 errors.Is 匹配。
var ErrDeadlocked = xerrors.New("scopedmutex: deadlocked")

// Deadlocked 构造后端 backend 检测到死锁时的 panic 值
func Deadlocked(backend string) error {
	return xerrors.WithCode(
		xerrors.Wrapf(ErrDeadlocked, "%s backend: mutex already held", backend),
		CodeDeadlocked,
	)
}
