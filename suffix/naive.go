package suffix

import (
	"slices"

	"github.com/hupe1980/phrasego/textseq"
)

// NewNaive builds a suffix array by comparison-sorting all suffixes. It has
// the same contract as New and exists for verification and for inputs small
// enough that the O(n^2 log n) worst case does not matter.
func NewNaive(seq textseq.Seq) *Array {
	n := seq.Len()
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(a, b int) int {
		return textseq.Compare(seq[a:], seq[b:])
	})
	return &Array{text: seq, sa: sa}
}
