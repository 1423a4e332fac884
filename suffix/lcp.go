package suffix

// LCP returns the longest-common-prefix array: LCP[i] is the length of the
// common prefix of the suffixes at SA[i-1] and SA[i], with LCP[0] = 0. It is
// computed with Kasai's algorithm on first use and cached; concurrent callers
// are safe.
func (a *Array) LCP() []int {
	a.lcpOnce.Do(func() {
		n := len(a.sa)
		lcp := make([]int, n)
		if n == 0 {
			a.lcp = lcp
			return
		}
		rank := a.Rank()
		t := a.text
		h := 0
		for i := 0; i < n; i++ {
			if rank[i] > 0 {
				j := a.sa[rank[i]-1]
				for i+h < n && j+h < n && t.At(i+h) == t.At(j+h) {
					h++
				}
				lcp[rank[i]] = h
				if h > 0 {
					h--
				}
			}
		}
		a.lcp = lcp
	})
	return a.lcp
}
