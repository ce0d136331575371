//go:build scopedmutex_fmt

package cs

import "fmt"

func (m *RawMutex) String() string {
	return fmt.Sprintf("cs.RawMutex{locked: %t}", m.IsLocked())
}
