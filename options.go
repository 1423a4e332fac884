package phrasego

import "log/slog"

// DefaultMaxDistance is the proximity tolerance used when none is configured.
const DefaultMaxDistance = 5

type options struct {
	naive            bool
	maxDistance      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Engine construction behavior.
type Option func(*options)

// WithNaiveBuilder selects the comparison-sort suffix array builder instead
// of the induced-sorting one. The resulting index is identical; the naive
// builder exists for verification and is O(n^2 log n) in the worst case.
func WithNaiveBuilder() Option {
	return func(o *options) {
		o.naive = true
	}
}

// WithMaxDistance configures the default proximity tolerance for grouped
// searches. Negative values are clamped to 0.
func WithMaxDistance(md int) Option {
	return func(o *options) {
		if md < 0 {
			md = 0
		}
		o.maxDistance = md
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &phrasego.BasicMetricsCollector{}
//	e := phrasego.New(seq, phrasego.WithMetricsCollector(metrics))
//	// ... query e ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := phrasego.NewJSONLogger(slog.LevelInfo)
//	e := phrasego.New(seq, phrasego.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxDistance:      DefaultMaxDistance,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
