package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/proposedesk/internal/metrics"
)

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveUpstream("proposes", "ok", 120*time.Millisecond)
	m.StaleResponse()
	m.CacheLookup(metrics.CacheHit)
	m.CacheLookup(metrics.CacheMiss)
	m.CacheLookup(metrics.CacheMiss)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `proposedesk_upstream_requests_total{endpoint="proposes",outcome="ok"} 1`)
	assert.Contains(t, body, `proposedesk_cache_lookups_total{result="miss"} 2`)
	assert.Contains(t, body, "proposedesk_stale_responses_total 1")
	assert.Contains(t, body, "go_goroutines")
}

func sampleValue(t *testing.T, reg *prometheus.Registry, name string) (float64, bool) {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range mf.GetMetric() {
			if g := metric.GetGauge(); g != nil {
				total += g.GetValue()
			}
			if c := metric.GetCounter(); c != nil {
				total += c.GetValue()
			}
		}
		return total, true
	}
	return 0, false
}

func TestMetrics_Sessions(t *testing.T) {
	m := metrics.New()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	value, ok := sampleValue(t, m.Registry(), "proposedesk_active_sessions")
	require.True(t, ok)
	assert.Equal(t, 1.0, value)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.StateChanged("board")
	a.HTTPRequest(http.MethodGet, http.StatusOK)

	value, ok := sampleValue(t, a.Registry(), "proposedesk_state_changes_total")
	require.True(t, ok)
	assert.Equal(t, 1.0, value)

	_, ok = sampleValue(t, b.Registry(), "proposedesk_state_changes_total")
	assert.False(t, ok, "vectors without observations are not exported")
}
