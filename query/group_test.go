package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupConstructors(t *testing.T) {
	g := And("a", "b")
	assert.Equal(t, KindAnd, g.Kind())
	assert.Equal(t, []string{"a", "b"}, g.Patterns())
	assert.Equal(t, 2, g.Len())

	g = Or("x")
	assert.Equal(t, KindOr, g.Kind())
	assert.Equal(t, []string{"x"}, g.Patterns())
}

func TestGroupExtend(t *testing.T) {
	base := And("a")
	extended := base.Extend("b", "c")

	assert.Equal(t, []string{"a"}, base.Patterns())
	assert.Equal(t, []string{"a", "b", "c"}, extended.Patterns())
	assert.Equal(t, KindAnd, extended.Kind())
}

func TestGroupImmutability(t *testing.T) {
	patterns := []string{"a", "b"}
	g := Or(patterns...)
	patterns[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, g.Patterns())

	view := g.Patterns()
	view[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, g.Patterns())
}

func TestGroupEmpty(t *testing.T) {
	g := And()
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Patterns())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "AND", KindAnd.String())
	assert.Equal(t, "OR", KindOr.String())
}
