//go:build !tinygo

package singlecore

func defaultMask() Mask {
	return NopMask{}
}
