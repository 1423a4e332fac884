package postings

// MergeAnd folds two position lists with the proximity rule: when the heads
// are within md of each other the smaller one is emitted and both advance;
// otherwise the smaller head is dropped. The fold stops when either list is
// exhausted. Each position pairs with at most one counterpart.
func MergeAnd(a, b List, md int) List {
	if md < 0 {
		md = 0
	}
	var out List
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		if within(x, y, md) {
			out = append(out, min(x, y))
			i++
			j++
			continue
		}
		if x < y {
			i++
		} else {
			j++
		}
	}
	return out
}

// MergeOr folds two position lists keeping every position from both sides:
// heads within md collapse to their smaller member, distant heads are
// emitted as they come, and whichever list survives is drained.
func MergeOr(a, b List, md int) List {
	if md < 0 {
		md = 0
	}
	var out List
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		if within(x, y, md) {
			out = append(out, min(x, y))
			i++
			j++
			continue
		}
		if x < y {
			out = append(out, x)
			i++
		} else {
			out = append(out, y)
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func within(x, y, md int) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= md
}
