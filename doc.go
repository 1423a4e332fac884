// Package phrasego provides an embedded phrase-search engine for Go.
//
// Phrasego indexes a single Unicode text with a suffix array built by
// induced sorting and answers substring and phrase queries on it. The index
// is built once and immutable afterwards; queries are read-only and safe to
// issue concurrently without synchronization.
//
// # Quick Start
//
//	ctx := context.Background()
//	e := phrasego.FromString(text).Build()
//
//	// Single pattern: every occurrence, sorted ascending.
//	positions, _ := e.SearchPattern(ctx, "romeo")
//
//	// Proximity group: positions where both patterns match nearby.
//	positions, _ = e.Search("romeo").And("juliet").MaxDistance(10).Execute(ctx)
//
//	// Boolean query language.
//	positions, _ = e.SearchQuery(ctx, "romeo _AND_ (juliet _OR_ tybalt)")
//
// # Query Model
//
// Three query surfaces share one index:
//
//   - SearchPattern locates a single literal pattern with two binary
//     searches over the suffix array.
//   - SearchGroup folds the occurrence lists of a flat AND/OR group with a
//     proximity-aware two-pointer merge under a configurable tolerance.
//   - SearchExpr and SearchQuery evaluate boolean expression trees
//     (AND/OR/NOT with parentheses) with plain set semantics.
//
// # Key Features
//
//   - SA-IS suffix array construction, near-linear in the text length
//   - Arbitrary 32-bit code-unit alphabets (full Unicode, custom tokens)
//   - LCP and rank arrays computed on demand and cached
//   - Deterministic results across runs and platforms
//   - Structured logging (log/slog) and pluggable metrics collection
package phrasego
