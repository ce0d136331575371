//go:build scopedmutex_fmt

package mutex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceyewan/scopedmutex/rawimpls/cs"
)

func TestBlockingMutex_String(t *testing.T) {
	m := NewInit[cs.RawMutex](42)
	assert.Equal(t, "BlockingMutex{data: 42}", fmt.Sprint(m))

	m.WithLock(func(*int) {
		assert.Equal(t, "BlockingMutex{data: <locked>}", m.String())
		assert.True(t, m.IsLocked())
	})
}

func TestRawMutex_String(t *testing.T) {
	raw := cs.New()
	assert.Equal(t, "cs.RawMutex{locked: false}", raw.String())
	raw.WithLock(func() {
		assert.Equal(t, "cs.RawMutex{locked: true}", raw.String())
	})
}
