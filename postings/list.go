// Package postings operates on position lists: strictly increasing slices of
// code-unit offsets into the indexed text. It provides the proximity merges
// the grouped search folds with, plain sorted-set operations for boolean
// evaluation, and conversions to and from roaring bitmaps.
package postings

import "github.com/RoaringBitmap/roaring/v2"

// List is a strictly increasing list of code-unit offsets. The empty list is
// valid and means "no positions".
type List []int

// Universe returns the list of every position in a text of length n.
func Universe(n int) List {
	l := make(List, n)
	for i := range l {
		l[i] = i
	}
	return l
}

// Bitmap converts the list into a roaring bitmap.
func (l List) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, p := range l {
		bm.Add(uint32(p))
	}
	return bm
}

// FromBitmap converts a roaring bitmap back into a sorted position list.
func FromBitmap(bm *roaring.Bitmap) List {
	if bm == nil || bm.IsEmpty() {
		return nil
	}
	l := make(List, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		l = append(l, int(it.Next()))
	}
	return l
}
