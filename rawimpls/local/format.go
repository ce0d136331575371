//go:build scopedmutex_fmt

package local

import "fmt"

func (m *RawMutex) String() string {
	return fmt.Sprintf("local.RawMutex{locked: %t}", m.taken)
}
