package pathmatcher

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedEnumerate(m *Matcher) []string {
	out := m.Enumerate()
	sort.Strings(out)
	return out
}

func TestEmptyMatcher(t *testing.T) {
	m := New()
	assert.Equal(t, NoMatch, m.Match("/a"))
	assert.Empty(t, m.Enumerate())
	assert.True(t, m.IsEmpty())
}

func TestExactPath(t *testing.T) {
	m := New()
	require.True(t, m.Insert("/a/b/c"))

	assert.Equal(t, ExactMatch, m.Match("/a/b/c"))
	assert.Equal(t, DescendantMatch, m.Match("/a/b"))
	assert.Equal(t, AncestorMatch, m.Match("/a/b/c/d"))
	assert.Equal(t, NoMatch, m.Match("/x"))
}

func TestWildcardToken(t *testing.T) {
	m := New()
	require.True(t, m.Insert("/a/*/c"))

	assert.Equal(t, ExactMatch, m.Match("/a/b/c"))
	assert.Equal(t, ExactMatch, m.Match("/a/bb/c"))
	assert.Equal(t, NoMatch, m.Match("/a/b/d"))
}

func TestEllipsis(t *testing.T) {
	m := New()
	require.True(t, m.Insert("/a/.../z"))

	assert.True(t, m.Match("/a/z").Has(ExactMatch))
	assert.True(t, m.Match("/a/b/z").Has(ExactMatch))
	assert.True(t, m.Match("/a/b/c/z").Has(ExactMatch))
	assert.Equal(t, DescendantMatch, m.Match("/a/b"))
}

func TestUnionAndDifference(t *testing.T) {
	m1 := New()
	m1.Insert("/a")
	m1.Insert("/b")

	m2 := New()
	m2.Insert("/b")
	m2.Insert("/c")

	require.True(t, m1.UnionFrom(m2))
	assert.Equal(t, []string{"/a", "/b", "/c"}, sortedEnumerate(m1))

	onlyB := New()
	onlyB.Insert("/b")
	require.True(t, m1.DifferenceFrom(onlyB))
	assert.Equal(t, []string{"/a", "/c"}, sortedEnumerate(m1))
}

func TestPrune(t *testing.T) {
	m := New()
	m.Insert("/a/b")
	m.Insert("/a/b/c")
	m.Insert("/a/d")

	require.True(t, m.Prune("/a/b"))
	assert.Equal(t, []string{"/a/d"}, sortedEnumerate(m))
	assert.Equal(t, NoMatch, m.Match("/a/b"))
	assert.Equal(t, DescendantMatch, m.Match("/a"))
}

func TestInsertRemoveIdempotence(t *testing.T) {
	m := New()
	assert.True(t, m.Insert("/a/b"))
	assert.False(t, m.Insert("/a/b"))

	assert.True(t, m.Remove("/a/b"))
	assert.False(t, m.Remove("/a/b"))
}

func TestExactMatchAgreesWithEnumerate(t *testing.T) {
	m := New()
	m.Insert("/a/b")
	m.Insert("/x/y/z")

	for _, p := range m.Enumerate() {
		assert.True(t, m.Match(p).Has(ExactMatch), "expected %q to be an exact match", p)
	}
	assert.False(t, m.Match("/not/present").Has(ExactMatch))
}

func TestCloneIndependence(t *testing.T) {
	m1 := New()
	m1.Insert("/a/b")
	m1.Insert("/a/.../z")

	m2 := m1.Clone()
	assert.True(t, m1.Equal(m2))

	m2.Insert("/new/path")
	assert.False(t, m1.Equal(m2))
	assert.False(t, m1.Match("/new/path").Has(ExactMatch))
}

func TestRootTerminator(t *testing.T) {
	m := New()
	assert.True(t, m.Insert("/"))
	assert.Equal(t, []string{"/"}, m.Enumerate())
	assert.True(t, m.Match("/").Has(ExactMatch))
}

func TestInsertRespectsLimits(t *testing.T) {
	maxTokens := 2
	m := NewWithLimits(Limits{MaxTokens: &maxTokens})

	assert.True(t, m.Insert("/a/b"))
	assert.False(t, m.Insert("/a/b/c"))
	assert.False(t, m.Match("/a/b/c").Has(ExactMatch))
}

func TestEveryMatchTerminatesEarly(t *testing.T) {
	m := New()
	m.Insert("/a")
	m.Insert("/a/b")
	m.Insert("/a/b/c")

	assert.Equal(t, EveryMatch, m.Match("/a/b"))
}

func TestUnionFromNilIsNoop(t *testing.T) {
	m := New()
	m.Insert("/a")
	assert.False(t, m.UnionFrom(nil))
	assert.False(t, m.DifferenceFrom(nil))
}

func TestClear(t *testing.T) {
	m := New()
	m.Insert("/a/b")
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.Enumerate())
}
