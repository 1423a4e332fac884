// Package suffix builds suffix arrays over code-unit sequences and locates
// substring occurrences on them.
//
// The production builder is SA-IS (Nong, Zhang, Chan 2009) generalized to
// large integer alphabets; a comparison-sort builder with an identical
// contract is available for verification and small inputs. Arrays are
// immutable after construction and safe for concurrent lookups.
package suffix

import (
	"sync"

	"github.com/hupe1980/phrasego/textseq"
)

// Array is a suffix array over a code-unit sequence. The text and the array
// co-own their lifetime; both are immutable after construction.
type Array struct {
	text textseq.Seq
	sa   []int

	rankOnce sync.Once
	rank     []int

	lcpOnce sync.Once
	lcp     []int
}

// New builds a suffix array with the SA-IS algorithm. Construction is
// near-linear in the text length and cannot fail on any valid input.
func New(seq textseq.Seq) *Array {
	a := &Array{text: seq, sa: []int{}}
	n := seq.Len()
	if n == 0 {
		return a
	}
	s, sigma := encode(seq)
	full := make([]int, len(s))
	sais(s, full, sigma)
	// full[0] is the internal sentinel suffix; real positions follow.
	a.sa = full[1:]
	return a
}

// Text returns the indexed sequence.
func (a *Array) Text() textseq.Seq { return a.text }

// Len returns the length of the indexed text.
func (a *Array) Len() int { return len(a.sa) }

// SA returns the suffix array itself: SA[i] is the start of the i-th
// smallest suffix. The returned slice is a read-only view.
func (a *Array) SA() []int { return a.sa }

// Rank returns the inverse permutation of the suffix array: Rank[SA[i]] = i.
// It is computed on first use and cached; concurrent callers are safe.
func (a *Array) Rank() []int {
	a.rankOnce.Do(func() {
		rank := make([]int, len(a.sa))
		for i, p := range a.sa {
			rank[p] = i
		}
		a.rank = rank
	})
	return a.rank
}
