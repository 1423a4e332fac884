package suffix

import (
	"slices"

	"github.com/hupe1980/phrasego/textseq"
)

// Alphabets up to this size are remapped through a flat rank table; larger
// (sparse) alphabets go through a sorted-unique map instead.
const denseAlphabetMax = 1 << 21

// encode densely remaps the code units of seq to [1, sigma) and appends the
// sentinel 0, which is strictly smaller than every real unit. The returned
// alphabet size covers the sentinel.
func encode(seq textseq.Seq) ([]int, int) {
	n := seq.Len()
	s := make([]int, n+1)
	max := seq.Max()
	if max < denseAlphabetMax {
		rank := make([]int, max+1)
		for i := 0; i < n; i++ {
			rank[seq.At(i)] = 1
		}
		next := 1
		for c, seen := range rank {
			if seen == 1 {
				rank[c] = next
				next++
			}
		}
		for i := 0; i < n; i++ {
			s[i] = rank[seq.At(i)]
		}
		return s, next
	}

	units := make([]uint32, n)
	for i := 0; i < n; i++ {
		units[i] = seq.At(i)
	}
	slices.Sort(units)
	units = slices.Compact(units)
	rank := make(map[uint32]int, len(units))
	for i, c := range units {
		rank[c] = i + 1
	}
	for i := 0; i < n; i++ {
		s[i] = rank[seq.At(i)]
	}
	return s, len(units) + 1
}

// sais fills sa with the suffix array of s. The values of s lie in
// [0, sigma) and s ends with the unique minimum sentinel 0.
func sais(s, sa []int, sigma int) {
	n := len(s)
	if n == 0 {
		return
	}
	if n == 1 {
		sa[0] = 0
		return
	}
	for i := range sa {
		sa[i] = -1
	}

	// S/L typing: the sentinel is S; equal runs inherit from the right.
	stype := make([]bool, n)
	stype[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			stype[i] = true
		case s[i] > s[i+1]:
			stype[i] = false
		default:
			stype[i] = stype[i+1]
		}
	}

	counts := make([]int, sigma)
	for _, c := range s {
		counts[c]++
	}

	var lms []int
	for i := 1; i < n; i++ {
		if stype[i] && !stype[i-1] {
			lms = append(lms, i)
		}
	}

	induce(s, sa, stype, counts, lms)

	// Name the LMS substrings in SA order, reusing the previous name when
	// the substring repeats.
	sortedLMS := make([]int, 0, len(lms))
	for _, p := range sa {
		if p > 0 && stype[p] && !stype[p-1] {
			sortedLMS = append(sortedLMS, p)
		}
	}
	names := make([]int, n)
	name, prev := 0, -1
	for _, p := range sortedLMS {
		if prev >= 0 && !lmsEqual(s, stype, prev, p) {
			name++
		}
		names[p] = name
		prev = p
	}
	numNames := name + 1

	reduced := make([]int, len(lms))
	for i, p := range lms {
		reduced[i] = names[p]
	}

	reducedSA := make([]int, len(reduced))
	if numNames < len(reduced) {
		sais(reduced, reducedSA, numNames)
	} else {
		// All names distinct: the reduced array is the inverse of the names.
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	ordered := make([]int, len(reducedSA))
	for i, ri := range reducedSA {
		ordered[i] = lms[ri]
	}
	for i := range sa {
		sa[i] = -1
	}
	induce(s, sa, stype, counts, ordered)
}

// induce seeds sa with the given LMS positions at their bucket tails, then
// runs the L-type left-to-right scan and the S-type right-to-left scan.
// The lms slice must already be in the relative order the seeding should
// respect; seeding iterates it right to left.
func induce(s, sa []int, stype []bool, counts, lms []int) {
	tails := bucketTails(counts)
	for i := len(lms) - 1; i >= 0; i-- {
		p := lms[i]
		c := s[p]
		sa[tails[c]] = p
		tails[c]--
	}

	heads := bucketHeads(counts)
	for i := 0; i < len(sa); i++ {
		p := sa[i]
		if p > 0 && !stype[p-1] {
			c := s[p-1]
			sa[heads[c]] = p - 1
			heads[c]++
		}
	}

	tails = bucketTails(counts)
	for i := len(sa) - 1; i >= 0; i-- {
		p := sa[i]
		if p > 0 && stype[p-1] {
			c := s[p-1]
			sa[tails[c]] = p - 1
			tails[c]--
		}
	}
}

func bucketHeads(counts []int) []int {
	heads := make([]int, len(counts))
	sum := 0
	for c, cnt := range counts {
		heads[c] = sum
		sum += cnt
	}
	return heads
}

func bucketTails(counts []int) []int {
	tails := make([]int, len(counts))
	sum := 0
	for c, cnt := range counts {
		sum += cnt
		tails[c] = sum - 1
	}
	return tails
}

// lmsEqual reports whether the LMS substrings starting at i and j are
// identical: same units and same length through the next LMS boundary. The
// boundary test is skipped on the first position, where both i and j are LMS
// starts by construction.
func lmsEqual(s []int, stype []bool, i, j int) bool {
	n := len(s)
	for k := 0; ; k++ {
		if s[i] != s[j] {
			return false
		}
		if k > 0 {
			iLMS := stype[i] && !stype[i-1]
			jLMS := stype[j] && !stype[j-1]
			if iLMS && jLMS {
				return true
			}
			if iLMS != jLMS {
				return false
			}
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}
