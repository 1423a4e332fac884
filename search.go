// Package phrasego provides an embedded phrase-search engine.
//
// This file implements a fluent search API for querying engines.
package phrasego

import (
	"context"

	"github.com/hupe1980/phrasego/postings"
	"github.com/hupe1980/phrasego/query"
)

// Search creates a new fluent search builder seeded with the given pattern.
//
// Example:
//
//	positions, err := e.Search("romeo").
//	    And("juliet").
//	    MaxDistance(10).
//	    Execute(ctx)
func (e *Engine) Search(pattern string) *SearchBuilder {
	return &SearchBuilder{
		e:        e,
		patterns: []string{pattern},
	}
}

// SearchBuilder is a fluent builder for constructing grouped searches.
type SearchBuilder struct {
	e        *Engine
	patterns []string
	kind     query.Kind
	kindSet  bool
	md       *int
	err      error
}

// And adds patterns combined with proximity AND semantics. Combining And
// and Or on the same builder sets ErrMixedGroup.
func (sb *SearchBuilder) And(patterns ...string) *SearchBuilder {
	return sb.extend(query.KindAnd, patterns)
}

// Or adds patterns combined with proximity OR semantics. Combining And and
// Or on the same builder sets ErrMixedGroup.
func (sb *SearchBuilder) Or(patterns ...string) *SearchBuilder {
	return sb.extend(query.KindOr, patterns)
}

func (sb *SearchBuilder) extend(kind query.Kind, patterns []string) *SearchBuilder {
	if sb.err != nil {
		return sb
	}
	if sb.kindSet && sb.kind != kind {
		sb.err = ErrMixedGroup
		return sb
	}
	sb.kind = kind
	sb.kindSet = true
	sb.patterns = append(sb.patterns, patterns...)
	return sb
}

// MaxDistance overrides the engine's proximity tolerance for this search.
// Negative values are clamped to 0.
func (sb *SearchBuilder) MaxDistance(md int) *SearchBuilder {
	sb.md = &md
	return sb
}

// Execute runs the search and returns the matching positions.
func (sb *SearchBuilder) Execute(ctx context.Context) (postings.List, error) {
	if sb.err != nil {
		return nil, sb.err
	}

	if !sb.kindSet {
		return sb.e.SearchPattern(ctx, sb.patterns[0])
	}

	var g query.Group
	if sb.kind == query.KindAnd {
		g = query.And(sb.patterns...)
	} else {
		g = query.Or(sb.patterns...)
	}

	return sb.e.SearchGroup(ctx, g, func(o *GroupSearchOptions) {
		if sb.md != nil {
			o.MaxDistance = *sb.md
		}
	})
}

// MustExecute runs the search, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (sb *SearchBuilder) MustExecute(ctx context.Context) postings.List {
	positions, err := sb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return positions
}

// Count executes the search and returns the number of matching positions.
func (sb *SearchBuilder) Count(ctx context.Context) (int, error) {
	positions, err := sb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(positions), nil
}

// Exists checks if at least one position matches the search.
func (sb *SearchBuilder) Exists(ctx context.Context) (bool, error) {
	count, err := sb.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
