package phrasego_bench_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/hupe1980/phrasego"
	"github.com/hupe1980/phrasego/internal/testutil"
	"github.com/hupe1980/phrasego/textseq"
)

// BenchmarkEngineBuild benchmarks index construction for both builders.
func BenchmarkEngineBuild(b *testing.B) {
	scenarios := []struct {
		name  string
		naive bool
	}{
		{"SAIS", false},
		{"Naive", true},
	}

	for _, sc := range scenarios {
		for _, size := range []int{1_000, 100_000} {
			if sc.naive && size > 1_000 {
				continue
			}

			units := testutil.RandomUnits(rand.New(rand.NewSource(42)), size, 26)
			seq := textseq.FromCodeUnits(units)

			b.Run(fmt.Sprintf("%s/n=%d", sc.name, size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					builder := phrasego.FromSeq(seq)
					if sc.naive {
						builder = builder.Naive()
					}
					_ = builder.Build()
				}
			})
		}
	}
}

// BenchmarkEngineSearch benchmarks single-pattern lookups on a prebuilt index.
func BenchmarkEngineSearch(b *testing.B) {
	units := testutil.RandomUnits(rand.New(rand.NewSource(7)), 100_000, 4)
	e := phrasego.FromSeq(textseq.FromCodeUnits(units)).Build()
	ctx := context.Background()

	scenarios := []struct {
		name    string
		pattern string
	}{
		{"Short", textseq.FromCodeUnits(units[100:103]).String()},
		{"Long", textseq.FromCodeUnits(units[100:132]).String()},
	}

	for _, sc := range scenarios {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := e.SearchPattern(ctx, sc.pattern); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEngineGroupSearch benchmarks proximity group searches.
func BenchmarkEngineGroupSearch(b *testing.B) {
	units := testutil.RandomUnits(rand.New(rand.NewSource(11)), 100_000, 4)
	e := phrasego.FromSeq(textseq.FromCodeUnits(units)).Build()
	ctx := context.Background()

	p1 := textseq.FromCodeUnits(units[50:54]).String()
	p2 := textseq.FromCodeUnits(units[500:504]).String()

	b.Run("And", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := e.Search(p1).And(p2).Execute(ctx); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Or", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := e.Search(p1).Or(p2).Execute(ctx); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkEngineQuery benchmarks boolean expression queries end to end.
func BenchmarkEngineQuery(b *testing.B) {
	units := testutil.RandomUnits(rand.New(rand.NewSource(13)), 100_000, 4)
	e := phrasego.FromSeq(textseq.FromCodeUnits(units)).Build()
	ctx := context.Background()

	p1 := textseq.FromCodeUnits(units[50:54]).String()
	p2 := textseq.FromCodeUnits(units[500:504]).String()
	query := p1 + " _AND_ _NOT_ " + p2

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := e.SearchQuery(ctx, query); err != nil {
			b.Fatal(err)
		}
	}
}
