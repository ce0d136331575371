//go:build scopedmutex_fmt

package lockapi

import "fmt"

func (m *RawMutex) String() string {
	return fmt.Sprintf("lockapi.RawMutex{locked: %t}", m.IsLocked())
}
