package suffix

import (
	"slices"
	"sort"

	"github.com/hupe1980/phrasego/textseq"
)

// bounds returns the half-open range [lo, hi) of suffix-array rows whose
// suffixes start with pat. Both bounds come from a binary search over the
// array; suffixes shorter than pat compare as smaller.
func (a *Array) bounds(pat textseq.Seq) (lo, hi int) {
	n := len(a.sa)
	t := a.text
	lo = sort.Search(n, func(i int) bool {
		return t.ComparePrefix(a.sa[i], pat) <= 0
	})
	hi = lo + sort.Search(n-lo, func(i int) bool {
		return t.ComparePrefix(a.sa[lo+i], pat) < 0
	})
	return lo, hi
}

// Lookup returns the start positions of every occurrence of pat in the text,
// sorted ascending. An empty pattern, an empty text, or a pattern longer than
// the text yields nil. Occurrences may overlap.
func (a *Array) Lookup(pat textseq.Seq) []int {
	if pat.Len() == 0 || len(a.sa) == 0 || pat.Len() > len(a.sa) {
		return nil
	}
	lo, hi := a.bounds(pat)
	if lo == hi {
		return nil
	}
	occ := make([]int, hi-lo)
	copy(occ, a.sa[lo:hi])
	slices.Sort(occ)
	return occ
}

// Count returns the number of occurrences of pat without materializing them.
func (a *Array) Count(pat textseq.Seq) int {
	if pat.Len() == 0 || len(a.sa) == 0 || pat.Len() > len(a.sa) {
		return 0
	}
	lo, hi := a.bounds(pat)
	return hi - lo
}

// Contains reports whether pat occurs in the text at least once.
func (a *Array) Contains(pat textseq.Seq) bool {
	return a.Count(pat) > 0
}
