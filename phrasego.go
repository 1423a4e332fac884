package phrasego

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/phrasego/postings"
	"github.com/hupe1980/phrasego/query"
	"github.com/hupe1980/phrasego/suffix"
	"github.com/hupe1980/phrasego/textseq"
)

// Engine is a phrase-search engine over a single immutable text. Build it
// once with New or a Builder; afterwards every query method is read-only and
// safe to call concurrently without synchronization.
type Engine struct {
	text        textseq.Seq
	arr         *suffix.Array
	maxDistance int
	logger      *Logger
	metrics     MetricsCollector
}

// New builds an engine over the given sequence. Construction cannot fail on
// any valid input.
func New(seq textseq.Seq, optFns ...Option) *Engine {
	o := applyOptions(optFns)

	start := time.Now()
	var arr *suffix.Array
	algorithm := "sais"
	if o.naive {
		arr = suffix.NewNaive(seq)
		algorithm = "naive"
	} else {
		arr = suffix.New(seq)
	}

	e := &Engine{
		text:        seq,
		arr:         arr,
		maxDistance: o.maxDistance,
		logger:      o.logger,
		metrics:     o.metricsCollector,
	}
	e.metrics.RecordBuild(seq.Len(), time.Since(start))
	e.logger.LogBuild(context.Background(), seq.Len(), algorithm)
	return e
}

// Len returns the text length in code units.
func (e *Engine) Len() int {
	if e.arr == nil {
		return 0
	}
	return e.arr.Len()
}

// Text returns the indexed sequence as a read-only view.
func (e *Engine) Text() textseq.Seq { return e.text }

// MaxDistance returns the engine's default proximity tolerance.
func (e *Engine) MaxDistance() int { return e.maxDistance }

// SuffixArray returns the underlying suffix array as a read-only view.
func (e *Engine) SuffixArray() []int {
	if e.arr == nil {
		return nil
	}
	return e.arr.SA()
}

// LCP returns the longest-common-prefix array as a read-only view.
func (e *Engine) LCP() []int {
	if e.arr == nil {
		return nil
	}
	return e.arr.LCP()
}

// SearchPattern returns every occurrence of pattern in the text, sorted
// ascending. An empty pattern yields an empty list.
func (e *Engine) SearchPattern(ctx context.Context, pattern string) (postings.List, error) {
	if e.arr == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()
	pat := textseq.FromString(pattern)
	occ := postings.List(e.arr.Lookup(pat))
	e.metrics.RecordSearch(pat.Len(), len(occ), time.Since(start), nil)
	e.logger.LogSearch(ctx, pat.Len(), len(occ), nil)
	return occ, nil
}

// GroupSearchOptions tunes a single grouped search.
type GroupSearchOptions struct {
	// MaxDistance is the proximity tolerance for this search. Negative
	// values are clamped to 0.
	MaxDistance int
}

// SearchGroup evaluates a flat proximity group: the patterns' occurrence
// lists are folded left to right with the two-pointer merge under the
// tolerance. A group with no patterns matches every position.
func (e *Engine) SearchGroup(ctx context.Context, g query.Group, optFns ...func(*GroupSearchOptions)) (postings.List, error) {
	if e.arr == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()

	o := GroupSearchOptions{MaxDistance: e.maxDistance}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.MaxDistance < 0 {
		o.MaxDistance = 0
	}

	patterns := g.Patterns()
	if len(patterns) == 0 {
		out := postings.Universe(e.arr.Len())
		e.metrics.RecordGroupSearch(g.Kind().String(), 0, len(out), time.Since(start), nil)
		e.logger.LogGroupSearch(ctx, g.Kind().String(), 0, len(out), nil)
		return out, nil
	}

	lists, err := e.lookupAll(ctx, patterns)
	if err != nil {
		e.metrics.RecordGroupSearch(g.Kind().String(), len(patterns), 0, time.Since(start), err)
		e.logger.LogGroupSearch(ctx, g.Kind().String(), len(patterns), 0, err)
		return nil, err
	}

	out := lists[0]
	for _, next := range lists[1:] {
		if g.Kind() == query.KindAnd {
			out = postings.MergeAnd(out, next, o.MaxDistance)
		} else {
			out = postings.MergeOr(out, next, o.MaxDistance)
		}
	}

	e.metrics.RecordGroupSearch(g.Kind().String(), len(patterns), len(out), time.Since(start), nil)
	e.logger.LogGroupSearch(ctx, g.Kind().String(), len(patterns), len(out), nil)
	return out, nil
}

// lookupAll locates every pattern's occurrences. Lookups run concurrently;
// the result order matches the pattern order so folds stay deterministic.
func (e *Engine) lookupAll(ctx context.Context, patterns []string) ([]postings.List, error) {
	lists := make([]postings.List, len(patterns))
	if len(patterns) == 1 {
		lists[0] = postings.List(e.arr.Lookup(textseq.FromString(patterns[0])))
		return lists, nil
	}

	grp, ctx := errgroup.WithContext(ctx)
	for i, p := range patterns {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lists[i] = postings.List(e.arr.Lookup(textseq.FromString(p)))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// SearchExpr evaluates a boolean expression tree with set semantics: AND
// intersects, OR unites, and NOT complements against every position of the
// text.
func (e *Engine) SearchExpr(ctx context.Context, expr query.Expr) (postings.List, error) {
	if e.arr == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()
	out := e.evalExpr(expr)
	e.metrics.RecordSearch(0, len(out), time.Since(start), nil)
	e.logger.LogExprSearch(ctx, expr.String(), len(out), nil)
	return out, nil
}

// SearchQuery parses a textual boolean query and evaluates it.
func (e *Engine) SearchQuery(ctx context.Context, q string) (postings.List, error) {
	if e.arr == nil {
		return nil, ErrNotBuilt
	}
	expr, err := query.Parse(q)
	if err != nil {
		wrapped := &ErrBadQuery{Query: q, cause: err}
		e.logger.LogExprSearch(ctx, q, 0, wrapped)
		return nil, wrapped
	}
	return e.SearchExpr(ctx, expr)
}

func (e *Engine) evalExpr(expr query.Expr) postings.List {
	switch v := expr.(type) {
	case query.Pattern:
		return postings.List(e.arr.Lookup(textseq.FromString(v.Lit)))
	case query.AndExpr:
		// a _AND_ _NOT_ b is a set difference; the complement is never
		// materialized on this path.
		if not, ok := v.Right.(query.NotExpr); ok {
			return postings.Difference(e.evalExpr(v.Left), e.evalExpr(not.Expr))
		}
		return postings.Intersect(e.evalExpr(v.Left), e.evalExpr(v.Right))
	case query.OrExpr:
		return postings.Union(e.evalExpr(v.Left), e.evalExpr(v.Right))
	case query.NotExpr:
		bm := roaring.Flip(e.evalExpr(v.Expr).Bitmap(), 0, uint64(e.arr.Len()))
		return postings.FromBitmap(bm)
	default:
		return nil
	}
}
