package textseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		seq := FromString("banana")
		assert.Equal(t, 6, seq.Len())
		assert.Equal(t, uint32('b'), seq.At(0))
		assert.Equal(t, uint32('a'), seq.At(5))
	})

	t.Run("cjk decodes per code point", func(t *testing.T) {
		seq := FromString("罗密欧")
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, uint32('罗'), seq.At(0))
	})

	t.Run("invalid utf8 becomes replacement", func(t *testing.T) {
		seq := FromString("a\xffb")
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, uint32(0xFFFD), seq.At(1))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, FromString("").Len())
	})
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "banana", "罗密欧与朱丽叶。", "héllo wörld"} {
		assert.Equal(t, s, FromString(s).String())
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint32(0), Seq(nil).Max())
	assert.Equal(t, uint32('n'), FromString("banana").Max())
	assert.Equal(t, uint32('罗'), FromString("a罗b").Max())
}

func TestEqual(t *testing.T) {
	assert.True(t, FromString("abc").Equal(FromString("abc")))
	assert.False(t, FromString("abc").Equal(FromString("abd")))
	assert.False(t, FromString("abc").Equal(FromString("ab")))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"less", "abc", "abd", -1},
		{"greater", "abd", "abc", 1},
		{"prefix is less", "ab", "abc", -1},
		{"extension is greater", "abc", "ab", 1},
		{"empty vs nonempty", "", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(FromString(tt.a), FromString(tt.b)))
		})
	}
}

func TestComparePrefix(t *testing.T) {
	s := FromString("banana")

	t.Run("match", func(t *testing.T) {
		assert.Equal(t, 0, s.ComparePrefix(1, FromString("ana")))
	})

	t.Run("pattern smaller", func(t *testing.T) {
		assert.Equal(t, -1, s.ComparePrefix(0, FromString("aaa")))
	})

	t.Run("pattern greater", func(t *testing.T) {
		assert.Equal(t, 1, s.ComparePrefix(1, FromString("anb")))
	})

	t.Run("suffix runs out counts as smaller", func(t *testing.T) {
		assert.Equal(t, 1, s.ComparePrefix(4, FromString("nana")))
	})

	t.Run("empty pattern matches anywhere", func(t *testing.T) {
		assert.Equal(t, 0, s.ComparePrefix(3, FromString("")))
	})
}
