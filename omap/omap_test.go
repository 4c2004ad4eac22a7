package omap

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestOmapEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia.omap")
	defer teardown()
	//
	m := New[string, int](strings.Compare)
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	_, found := m.Find("x")
	require.False(t, found)
}

func TestOmapInsertKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia.omap")
	defer teardown()
	//
	m := New[string, int](strings.Compare)
	m = m.With("m", 2).With("a", 1).With("z", 3)
	require.Equal(t, 3, m.Len())
	keys := []string{}
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"a", "m", "z"}, keys)
	v, found := m.Find("m")
	require.True(t, found)
	require.Equal(t, 2, v)
}

func TestOmapOverwrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia.omap")
	defer teardown()
	//
	m := Singleton(strings.Compare, "a", 1)
	n := m.With("a", 7)
	require.Equal(t, 1, n.Len())
	v, _ := n.Find("a")
	require.Equal(t, 7, v)
	// the original incarnation is untouched
	v, _ = m.Find("a")
	require.Equal(t, 1, v)
}

func TestOmapWithout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia.omap")
	defer teardown()
	//
	m := New[string, int](strings.Compare).With("a", 1).With("b", 2)
	n := m.Without("a")
	require.Equal(t, 1, n.Len())
	_, found := n.Find("a")
	require.False(t, found)
	require.Equal(t, 2, m.Len(), "original incarnation must be untouched")
	require.True(t, n.Without("b").IsEmpty())
	same := m.Without("zz")
	require.Equal(t, m.Len(), same.Len())
}

func TestOmapMinMaxFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia.omap")
	defer teardown()
	//
	m := New[int, string](func(a, b int) int { return a - b })
	m = m.With(5, "five").With(1, "one").With(3, "three")
	k, v := m.Min()
	require.Equal(t, 1, k)
	require.Equal(t, "one", v)
	k, _ = m.Max()
	require.Equal(t, 5, k)
	sum := Fold(m, 0, func(acc, key int, _ string) int { return acc + key })
	require.Equal(t, 9, sum)
}

func TestOmapMinOfEmptyPanics(t *testing.T) {
	m := New[int, int](func(a, b int) int { return a - b })
	require.Panics(t, func() { m.Min() })
}

func TestOmapNeedsComparator(t *testing.T) {
	require.Panics(t, func() { New[int, int](nil) })
	var m Map[int, int] // zero value has no comparator
	require.Panics(t, func() { m.Find(1) })
}
