package prometheus

// AppMetrics holds every metric surfgen emits, grouped by layer.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Slab builder
	SlabBuildsTotal   CounterVec
	SlabBuildDuration HistogramVec
	SlabAtomCount     HistogramVec

	// Adsorption engine
	AnalysesTotal    CounterVec
	AnalysisDuration HistogramVec
	SitesReturned    HistogramVec

	// Cache
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
}

var (
	// DefaultHTTPDurationBuckets spans sub-millisecond handlers up to slow
	// 10-second outliers.
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	// DefaultComputeDurationBuckets suits the in-memory generator work, which
	// completes in microseconds to low milliseconds.
	DefaultComputeDurationBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1}

	// DefaultCountBuckets covers the bounded atom and site counts the builder
	// and engine produce.
	DefaultCountBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128}
)

// NewAppMetrics registers all surfgen metrics on the given collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total",
		"Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds",
		"HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")

	m.SlabBuildsTotal = collector.RegisterCounter("slab_builds_total",
		"Slab builds by termination and cache outcome", "termination", "source")
	m.SlabBuildDuration = collector.RegisterHistogram("slab_build_duration_seconds",
		"Slab build duration", DefaultComputeDurationBuckets, "termination")
	m.SlabAtomCount = collector.RegisterHistogram("slab_atom_count",
		"Atoms per built slab", DefaultCountBuckets, "termination")

	m.AnalysesTotal = collector.RegisterCounter("adsorption_analyses_total",
		"Adsorption analyses by outcome", "outcome")
	m.AnalysisDuration = collector.RegisterHistogram("adsorption_analysis_duration_seconds",
		"Adsorption analysis duration", DefaultComputeDurationBuckets)
	m.SitesReturned = collector.RegisterHistogram("adsorption_sites_returned",
		"Adsorption sites per analysis result", DefaultCountBuckets)

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total",
		"Structure cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total",
		"Structure cache misses", "cache")

	return m
}
