// Package prom implements phrasego.MetricsCollector on Prometheus
// collectors and exposes an HTTP handler for scraping.
package prom

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/phrasego"
)

var _ phrasego.MetricsCollector = (*Collector)(nil)

// Collector records engine operations into Prometheus metrics. It satisfies
// phrasego.MetricsCollector.
type Collector struct {
	BuildsTotal        prometheus.Counter
	BuildDuration      prometheus.Histogram
	IndexedCodeUnits   prometheus.Gauge
	SearchesTotal      *prometheus.CounterVec
	SearchLatency      prometheus.Histogram
	SearchResultsCount prometheus.Histogram
	GroupSearchesTotal *prometheus.CounterVec
	GroupSearchLatency *prometheus.HistogramVec
}

// New creates the collector and registers its metrics with reg. If reg is
// nil, the default registerer is used.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		BuildsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "phrasego_builds_total",
				Help: "Total number of index builds.",
			},
		),
		BuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "phrasego_build_duration_seconds",
				Help:    "Index build time in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),
		IndexedCodeUnits: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "phrasego_indexed_code_units",
				Help: "Length of the most recently indexed text in code units.",
			},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phrasego_searches_total",
				Help: "Total single-pattern searches by status (ok, error).",
			},
			[]string{"status"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "phrasego_search_latency_seconds",
				Help:    "Single-pattern search latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "phrasego_search_results_count",
				Help:    "Number of positions returned per search.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 1000, 10000},
			},
		),
		GroupSearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phrasego_group_searches_total",
				Help: "Total grouped proximity searches by kind and status.",
			},
			[]string{"kind", "status"},
		),
		GroupSearchLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "phrasego_group_search_latency_seconds",
				Help:    "Grouped proximity search latency in seconds by kind.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"kind"},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		c.BuildsTotal,
		c.BuildDuration,
		c.IndexedCodeUnits,
		c.SearchesTotal,
		c.SearchLatency,
		c.SearchResultsCount,
		c.GroupSearchesTotal,
		c.GroupSearchLatency,
	)

	return c
}

// RecordBuild implements phrasego.MetricsCollector.
func (c *Collector) RecordBuild(n int, duration time.Duration) {
	c.BuildsTotal.Inc()
	c.BuildDuration.Observe(duration.Seconds())
	c.IndexedCodeUnits.Set(float64(n))
}

// RecordSearch implements phrasego.MetricsCollector.
func (c *Collector) RecordSearch(patternLen, found int, duration time.Duration, err error) {
	c.SearchesTotal.WithLabelValues(status(err)).Inc()
	c.SearchLatency.Observe(duration.Seconds())
	if err == nil {
		c.SearchResultsCount.Observe(float64(found))
	}
}

// RecordGroupSearch implements phrasego.MetricsCollector.
func (c *Collector) RecordGroupSearch(kind string, patterns, found int, duration time.Duration, err error) {
	c.GroupSearchesTotal.WithLabelValues(kind, status(err)).Inc()
	c.GroupSearchLatency.WithLabelValues(kind).Observe(duration.Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
