package postings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	assert.Equal(t, List{2, 5}, Intersect(List{1, 2, 5, 9}, List{2, 3, 5}))
	assert.Nil(t, Intersect(List{1, 3}, List{2, 4}))
	assert.Nil(t, Intersect(nil, List{1}))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, List{1, 2, 3, 5, 9}, Union(List{1, 5, 9}, List{2, 3, 5}))
	assert.Equal(t, List{1, 2}, Union(List{1, 2}, nil))
	assert.Equal(t, List{1, 2}, Union(nil, List{1, 2}))
	assert.Equal(t, List{4}, Union(List{4}, List{4}))
}

func TestDifference(t *testing.T) {
	assert.Equal(t, List{1, 9}, Difference(List{1, 5, 9}, List{2, 5}))
	assert.Equal(t, List{1, 2}, Difference(List{1, 2}, nil))
	assert.Nil(t, Difference(List{1, 2}, List{1, 2}))
	assert.Nil(t, Difference(nil, List{1}))
}

func TestWithinAny(t *testing.T) {
	t.Run("reports each qualifier once", func(t *testing.T) {
		assert.Equal(t, List{10}, WithinAny(List{10}, List{8, 9, 11}, 2))
	})

	t.Run("partners are not consumed", func(t *testing.T) {
		assert.Equal(t, List{10, 12}, WithinAny(List{10, 12}, List{11}, 2))
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Nil(t, WithinAny(List{10}, List{50}, 5))
	})

	t.Run("negative tolerance clamps to zero", func(t *testing.T) {
		assert.Equal(t, List{7}, WithinAny(List{5, 7}, List{7}, -1))
	})

	t.Run("empty b", func(t *testing.T) {
		assert.Nil(t, WithinAny(List{1, 2}, nil, 5))
	})
}

func TestOrdered(t *testing.T) {
	t.Run("follower starts right after match", func(t *testing.T) {
		assert.Equal(t, List{0}, Ordered(List{0}, List{3}, 3, 0))
	})

	t.Run("follower within tolerance window", func(t *testing.T) {
		assert.Equal(t, List{0, 10}, Ordered(List{0, 10}, List{5, 14}, 3, 2))
	})

	t.Run("follower too early", func(t *testing.T) {
		assert.Nil(t, Ordered(List{5}, List{6}, 3, 2))
	})

	t.Run("follower too late", func(t *testing.T) {
		assert.Nil(t, Ordered(List{0}, List{10}, 3, 2))
	})
}

func TestBitmapRoundTrip(t *testing.T) {
	l := List{0, 1, 7, 100, 100_000}
	assert.Equal(t, l, FromBitmap(l.Bitmap()))
	assert.Nil(t, FromBitmap(List(nil).Bitmap()))
	assert.Nil(t, FromBitmap(nil))
}

func TestUniverse(t *testing.T) {
	assert.Equal(t, List{0, 1, 2}, Universe(3))
	assert.Empty(t, Universe(0))
}
