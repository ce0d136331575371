//go:build !scopedmutex_nounwind

// Package unwind 决定临界区闭包 panic 时，释放步骤是否仍然执行。
//
// 默认构建下释放步骤由 defer 保证；使用 scopedmutex_nounwind 构建时
// 释放步骤只在闭包正常返回后执行，换取更小的代码体积。
package unwind

// Enabled 报告当前构建是否保证 panic 时释放。
const Enabled = true

// Run 执行 f，并在 f 返回或 panic 展开时执行 release。
func Run(f func(), release func()) {
	defer release()
	f()
}
