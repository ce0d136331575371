//go:build scopedmutex_fmt

package singlecore

import "fmt"

func (m *RawMutex) String() string {
	return fmt.Sprintf("singlecore.RawMutex{locked: %t}", m.IsLocked())
}
