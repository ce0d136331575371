package backend

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/scopedmutex/instrument"
	"github.com/ceyewan/scopedmutex/rawimpls/cs"
	"github.com/ceyewan/scopedmutex/rawimpls/local"
	"github.com/ceyewan/scopedmutex/rawimpls/lockapi"
	"github.com/ceyewan/scopedmutex/rawimpls/singlecore"
	"github.com/ceyewan/scopedmutex/testkit"
)

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrConfigNil)
}

func TestNew_Defaults(t *testing.T) {
	cfg := &Config{}
	raw, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, KindCriticalSection, cfg.Kind)
	assert.Equal(t, "default", cfg.Name)
	assert.IsType(t, &cs.RawMutex{}, raw)
}

func TestNew_Kinds(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want any
	}{
		{"critical-section", &Config{Kind: KindCriticalSection}, &cs.RawMutex{}},
		{"local", &Config{Kind: KindLocal}, &local.RawMutex{}},
		{"single-core", &Config{Kind: KindSingleCore, AssumeSingleCore: true}, &singlecore.RawMutex{}},
		{"lock-api", &Config{Kind: KindLockAPI}, &lockapi.RawMutex{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := New(tt.cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.want, raw)

			value := 0
			assert.True(t, raw.TryWithLock(func() { value = 1 }))
			assert.Equal(t, 1, value)
			assert.False(t, raw.IsLocked())
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&Config{Kind: "spinlock"})
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = New(&Config{Kind: KindSingleCore})
	assert.ErrorIs(t, err, ErrSingleCoreNotAssumed)
}

func TestNew_WithLocker(t *testing.T) {
	var mu sync.Mutex
	raw, err := New(&Config{Kind: KindLockAPI}, WithLocker(&mu))
	require.NoError(t, err)

	raw.WithLock(func() {
		assert.False(t, mu.TryLock())
	})
	assert.True(t, mu.TryLock())
	mu.Unlock()
}

func TestNew_Instrumented(t *testing.T) {
	kit := testkit.NewKit(t)
	raw, err := New(&Config{Kind: KindLocal, Name: testkit.NewID(), Instrument: true},
		WithLogger(kit.Logger), WithMeter(kit.Meter))
	require.NoError(t, err)

	m, ok := raw.(*instrument.Mutex)
	require.True(t, ok)
	assert.IsType(t, &local.RawMutex{}, m.Unwrap())

	raw.WithLock(func() {})
}
