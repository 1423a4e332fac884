package phrasego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see the prom subpackage for a ready-made collector).
type MetricsCollector interface {
	// RecordBuild is called once after index construction.
	// n is the text length in code units, duration the build time.
	RecordBuild(n int, duration time.Duration)

	// RecordSearch is called after each single-pattern search.
	// patternLen is the pattern length in code units, found the number of
	// occurrences, err is nil if successful.
	RecordSearch(patternLen, found int, duration time.Duration, err error)

	// RecordGroupSearch is called after each grouped proximity search.
	// kind is "AND" or "OR", patterns the group size, found the number of
	// result positions.
	RecordGroupSearch(kind string, patterns, found int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)                           {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordGroupSearch(string, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount            atomic.Int64
	BuildTotalNanos       atomic.Int64
	SearchCount           atomic.Int64
	SearchErrors          atomic.Int64
	SearchFound           atomic.Int64
	SearchTotalNanos      atomic.Int64
	GroupSearchCount      atomic.Int64
	GroupSearchErrors     atomic.Int64
	GroupSearchFound      atomic.Int64
	GroupSearchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(n int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(patternLen, found int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	} else {
		b.SearchFound.Add(int64(found))
	}
}

// RecordGroupSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroupSearch(kind string, patterns, found int, duration time.Duration, err error) {
	b.GroupSearchCount.Add(1)
	b.GroupSearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GroupSearchErrors.Add(1)
	} else {
		b.GroupSearchFound.Add(int64(found))
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:          b.BuildCount.Load(),
		BuildAvgNanos:       avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		SearchCount:         b.SearchCount.Load(),
		SearchErrors:        b.SearchErrors.Load(),
		SearchFound:         b.SearchFound.Load(),
		SearchAvgNanos:      avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		GroupSearchCount:    b.GroupSearchCount.Load(),
		GroupSearchErrors:   b.GroupSearchErrors.Load(),
		GroupSearchFound:    b.GroupSearchFound.Load(),
		GroupSearchAvgNanos: avg(b.GroupSearchTotalNanos.Load(), b.GroupSearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount          int64
	BuildAvgNanos       int64
	SearchCount         int64
	SearchErrors        int64
	SearchFound         int64
	SearchAvgNanos      int64
	GroupSearchCount    int64
	GroupSearchErrors   int64
	GroupSearchFound    int64
	GroupSearchAvgNanos int64
}
