package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "surfgen"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestRegisterCounter_Idempotent(t *testing.T) {
	c := newTestCollector(t)

	// Registering the same name twice must not panic and must return a
	// usable vector both times.
	v1 := c.RegisterCounter("slab_builds_total", "builds", "termination", "source")
	v2 := c.RegisterCounter("slab_builds_total", "builds", "termination", "source")

	v1.WithLabelValues("111", "generated").Inc()
	v2.WithLabelValues("111", "generated").Add(2)
}

func TestMetricsExposition(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.SlabBuildsTotal.WithLabelValues("111", "generated").Inc()
	m.AnalysesTotal.WithLabelValues("ok").Inc()
	m.SitesReturned.WithLabelValues().Observe(8)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(body, "surfgen_slab_builds_total"), "missing build counter:\n%s", body)
	assert.True(t, strings.Contains(body, "surfgen_adsorption_analyses_total"), "missing analysis counter")
	assert.True(t, strings.Contains(body, "surfgen_adsorption_sites_returned"), "missing sites histogram")
}

func TestRegisterHistogram_NilBuckets(t *testing.T) {
	c := newTestCollector(t)
	h := c.RegisterHistogram("freeform_duration_seconds", "freeform", nil)
	h.WithLabelValues().Observe(0.5)
}
