//go:build !scopedmutex_nounwind

package unwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReleasesOnReturn(t *testing.T) {
	var order []string
	Run(func() { order = append(order, "f") }, func() { order = append(order, "release") })
	assert.Equal(t, []string{"f", "release"}, order)
}

func TestRun_ReleasesOnPanic(t *testing.T) {
	released := false
	assert.PanicsWithValue(t, "boom", func() {
		Run(func() { panic("boom") }, func() { released = true })
	})
	assert.True(t, released)
	assert.True(t, Enabled)
}
