// Package phrasego provides an embedded phrase-search engine.
//
// This file implements the fluent builder API for creating and configuring
// engines. Builders are immutable - each method returns a new builder with
// the updated configuration.
package phrasego

import "github.com/hupe1980/phrasego/textseq"

// FromString creates a new engine builder over a UTF-8 text. The text is
// decoded into one code unit per code point.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	e := phrasego.FromString(text).
//	    MaxDistance(10).
//	    Logger(phrasego.NewTextLogger(slog.LevelDebug)).
//	    Build()
func FromString(text string) Builder {
	return Builder{
		seq:         textseq.FromString(text),
		maxDistance: DefaultMaxDistance,
	}
}

// FromCodeUnits creates a new engine builder over raw 32-bit code units.
// The slice is adopted without copying and must not be modified afterwards.
func FromCodeUnits(units []uint32) Builder {
	return Builder{
		seq:         textseq.FromCodeUnits(units),
		maxDistance: DefaultMaxDistance,
	}
}

// FromSeq creates a new engine builder over an existing sequence.
func FromSeq(seq textseq.Seq) Builder {
	return Builder{
		seq:         seq,
		maxDistance: DefaultMaxDistance,
	}
}

// Builder is an immutable fluent builder for creating engines.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	seq         textseq.Seq
	naive       bool
	maxDistance int
	logger      *Logger
	metrics     MetricsCollector
}

// Naive selects the comparison-sort suffix array builder. The resulting
// index is identical to the default one; use it to cross-check or for very
// small texts.
func (b Builder) Naive() Builder {
	b.naive = true
	return b
}

// MaxDistance sets the default proximity tolerance for grouped searches.
// Negative values are clamped to 0.
// Default: 5.
func (b Builder) MaxDistance(md int) Builder {
	b.maxDistance = md
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the engine. Construction cannot fail on any valid input.
func (b Builder) Build() *Engine {
	var optFns []Option
	if b.naive {
		optFns = append(optFns, WithNaiveBuilder())
	}
	optFns = append(optFns, WithMaxDistance(b.maxDistance))
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return New(b.seq, optFns...)
}
