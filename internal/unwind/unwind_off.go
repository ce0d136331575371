//go:build scopedmutex_nounwind

package unwind

// Enabled 报告当前构建是否保证 panic 时释放。
const Enabled = false

// Run 执行 f 后执行 release。f panic 时 release 不会执行。
func Run(f func(), release func()) {
	f()
	release()
}
