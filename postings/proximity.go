package postings

// WithinAny returns the positions of a that have at least one position of b
// within md in either direction. Unlike MergeAnd, a qualifying position is
// reported exactly once no matter how many partners it has, and partners are
// not consumed.
func WithinAny(a, b List, md int) List {
	if md < 0 {
		md = 0
	}
	var out List
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x-md {
			j++
		}
		if j < len(b) && b[j] <= x+md {
			out = append(out, x)
		}
	}
	return out
}

// Ordered returns the positions of a that are followed by a position of b
// starting within md units after the end of a match of length lenA. It keeps
// a[i] when some b[j] lies in [a[i]+lenA, a[i]+lenA+md].
func Ordered(a, b List, lenA, md int) List {
	if md < 0 {
		md = 0
	}
	var out List
	j := 0
	for _, x := range a {
		lo := x + lenA
		for j < len(b) && b[j] < lo {
			j++
		}
		if j < len(b) && b[j] <= lo+md {
			out = append(out, x)
		}
	}
	return out
}
