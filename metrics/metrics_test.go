package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m Meter) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	m, err := New(&Config{Enabled: false})
	require.NoError(t, err)
	_, ok := m.(noopMeter)
	assert.True(t, ok, "禁用时应返回 noop Meter")

	c, err := m.Counter("c_total", "desc")
	require.NoError(t, err)
	c.Inc(context.Background())
	require.NoError(t, m.Shutdown(context.Background()))
}

func TestMeter_RecordAndScrape(t *testing.T) {
	ctx := context.Background()
	m, err := New(NewDevDefaultConfig("metrics-test"))
	require.NoError(t, err)
	defer m.Shutdown(ctx)

	c, err := m.Counter("test_lock_acquired_total", "acquired")
	require.NoError(t, err)
	c.Inc(ctx, L("backend", "local"))
	c.Add(ctx, 2, L("backend", "local"))
	c.Add(ctx, -5, L("backend", "local"))

	g, err := m.Gauge("test_lock_held", "held")
	require.NoError(t, err)
	g.Inc(ctx)
	g.Inc(ctx)
	g.Dec(ctx)

	h, err := m.Histogram("test_lock_hold_duration_seconds", "hold", WithUnit("s"))
	require.NoError(t, err)
	h.Record(ctx, 0.01)

	body := scrape(t, m)
	assert.Contains(t, body, `test_lock_acquired_total{backend="local"`)
	assert.Contains(t, body, "test_lock_held")
	assert.Contains(t, body, "test_lock_hold_duration_seconds_bucket")
}

func TestNew_IndependentRegistries(t *testing.T) {
	ctx := context.Background()
	m1 := Must(NewDevDefaultConfig("a"))
	defer m1.Shutdown(ctx)
	m2 := Must(NewDevDefaultConfig("b"))
	defer m2.Shutdown(ctx)

	c1, err := m1.Counter("only_in_first_total", "first")
	require.NoError(t, err)
	c1.Inc(ctx)

	assert.Contains(t, scrape(t, m1), "only_in_first_total")
	assert.NotContains(t, scrape(t, m2), "only_in_first_total")
}

func TestLabelKey(t *testing.T) {
	assert.Equal(t, "", labelKey(nil))
	assert.Equal(t, "a=1|b=2", labelKey([]Label{L("a", "1"), L("b", "2")}))
}

func TestGauge_SharedAcrossHandles(t *testing.T) {
	ctx := context.Background()
	m := Must(NewDevDefaultConfig("gauge"))
	defer m.Shutdown(ctx)

	g1, err := m.Gauge("shared_lock_held", "held")
	require.NoError(t, err)
	g2, err := m.Gauge("shared_lock_held", "held")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				g1.Inc(ctx, L("name", "orders"))
				g2.Dec(ctx, L("name", "orders"))
			}
		}()
	}
	wg.Wait()
	g1.Inc(ctx, L("name", "orders"))
	g2.Inc(ctx, L("name", "orders"))

	var line string
	for _, l := range strings.Split(scrape(t, m), "\n") {
		if strings.HasPrefix(l, "shared_lock_held{") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.True(t, strings.HasSuffix(line, " 2"), "同名 Gauge 应累加到同一个值: %s", line)
}
