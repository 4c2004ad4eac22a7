package patricia

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapInsertOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint32, string]{5, "a"},
		Pair[uint32, string]{3, "b"},
		Pair[uint32, string]{11, "f"},
		Pair[uint32, string]{2, "d"},
	)
	m = m.With(5, "x")
	if v, ok := m.Find(5); !ok || v != "x" {
		t.Errorf("expected binding 5↦x after overwrite, is %q (found=%v)", v, ok)
	}
	if m.Len() != 4 {
		t.Logf("map =\n%s", m.Dump())
		t.Errorf("expected map to still have 4 bindings, has %d", m.Len())
	}
	for key, want := range map[uint32]string{3: "b", 11: "f", 2: "d"} {
		if v, ok := m.Find(key); !ok || v != want {
			t.Errorf("expected binding %d↦%s to be unchanged, is %q (found=%v)", key, want, v, ok)
		}
	}
}

func TestMapFindMiss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := Map[uint32, int]{}.With(7, 7)
	if _, ok := m.Find(8); ok {
		t.Error("did not expect to find 8")
	}
	if v, ok := m.Find(7); !ok || v != 7 {
		t.Errorf("expected to find 7↦7, got %d (found=%v)", v, ok)
	}
}

func TestMapGetPanicsOnMiss(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Get of absent key to panic, didn't")
		}
	}()
	_ = Map[uint32, int]{}.Get(7)
}

func TestMapWithIfAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := Map[uint32, string]{}.With(7, "seven")
	same := m.WithIfAbsent(7, "SEVEN")
	if same.root != m.root {
		t.Error("expected WithIfAbsent on present key to return the identical trie, didn't")
	}
	if v, _ := same.Find(7); v != "seven" {
		t.Errorf("expected existing binding to survive, is %q", v)
	}
	grown := m.WithIfAbsent(8, "eight")
	if v, ok := grown.Find(8); !ok || v != "eight" {
		t.Errorf("expected WithIfAbsent to add the absent key, got %q (found=%v)", v, ok)
	}
}

func TestMapRemoveCollapses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint32, int]{1, 1},
		Pair[uint32, int]{2, 2},
	)
	m = m.Without(1)
	if m.Len() != 1 {
		t.Errorf("expected 1 binding after removal, have %d", m.Len())
	}
	if _, ok := m.root.(*leaf[uint32, int]); !ok {
		t.Logf("map =\n%s", m.Dump())
		t.Error("expected the surviving sibling to be promoted to the root, isn't")
	}
	unchanged := m.Without(42)
	if unchanged.root != m.root {
		t.Error("expected removal of absent key to return the identical trie, didn't")
	}
}

func TestMapUnionMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	a := MapOf(Pair[uint32, int]{1, 10}, Pair[uint32, int]{2, 20})
	b := MapOf(Pair[uint32, int]{2, 200}, Pair[uint32, int]{3, 30})
	sum := a.Union(b, func(x, y int) int { return x + y })
	if sum.Len() != 3 {
		t.Errorf("expected merged map to have 3 bindings, has %d", sum.Len())
	}
	if v, _ := sum.Find(2); v != 220 {
		t.Errorf("expected clashing key to be merged to 220, is %d", v)
	}
	left := a.Union(b, nil)
	if v, _ := left.Find(2); v != 20 {
		t.Errorf("expected nil merge to keep the receiver's value 20, is %d", v)
	}
	if v, _ := left.Find(3); v != 30 {
		t.Errorf("expected key only in the argument to be adopted, is %d", v)
	}
}

func TestMapEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	eq := func(a, b int) bool { return a == b }
	a := MapOf(Pair[uint32, int]{1, 10}, Pair[uint32, int]{5, 50})
	b := MapOf(Pair[uint32, int]{5, 50}, Pair[uint32, int]{1, 10}) // other insertion order
	if !a.Equal(b, eq) {
		t.Error("expected maps with equal content to be equal, aren't")
	}
	if a.Equal(b.With(5, 51), eq) {
		t.Error("did not expect maps with differing values to be equal")
	}
	if a.Equal(b.Without(5), eq) {
		t.Error("did not expect maps with differing keys to be equal")
	}
}

func TestMapEnumeration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint64, string]{20, "t"},
		Pair[uint64, string]{10, "x"},
		Pair[uint64, string]{1 << 40, "big"},
	)
	pairs := m.ToSlice()
	if len(pairs) != 3 || pairs[0].Key != 10 || pairs[1].Key != 20 || pairs[2].Key != 1<<40 {
		t.Errorf("expected ascending key order 10, 20, 1<<40; got %v", pairs)
	}
	keys := []uint64{}
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 3 || keys[0] != 10 {
		t.Errorf("expected Keys to follow ascending order, got %v", keys)
	}
	last := len(pairs) - 1
	for k, v := range m.Descending() {
		if k != pairs[last].Key || v != pairs[last].Value {
			t.Errorf("expected descending iteration to mirror ToSlice, diverges at %d", k)
		}
		last--
	}
}

func TestMapMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint32, string]{5, "five"},
		Pair[uint32, string]{2, "two"},
		Pair[uint32, string]{0xFFFFFFFF, "minus one"},
	)
	if k, v := m.Min(); k != 2 || v != "two" {
		t.Errorf("expected unsigned min to be 2↦two, is %d↦%s", k, v)
	}
	if k, _ := m.Max(); k != 0xFFFFFFFF {
		t.Errorf("expected unsigned max to be 0xFFFFFFFF, is %#x", k)
	}
	if k, v := m.MinSigned(); k != 0xFFFFFFFF || v != "minus one" {
		t.Errorf("expected signed min to be -1, is %#x↦%s", k, v)
	}
	if k, _ := m.MaxSigned(); k != 5 {
		t.Errorf("expected signed max to be 5, is %d", k)
	}
}

func TestMapBulkTransforms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint32, int]{1, 1},
		Pair[uint32, int]{2, 4},
		Pair[uint32, int]{3, 9},
		Pair[uint32, int]{4, 16},
	)
	small := m.Filter(func(_ uint32, v int) bool { return v < 10 })
	if small.Len() != 3 || small.Contains(4) {
		t.Errorf("expected filter to keep 3 bindings below 10, got %v", small)
	}
	yes, no := m.Partition(func(k uint32, _ int) bool { return k%2 == 0 })
	if yes.Len() != 2 || no.Len() != 2 {
		t.Errorf("unexpected partition sizes %d/%d", yes.Len(), no.Len())
	}
	names := MapValues(m, func(_ uint32, v int) string {
		if v > 8 {
			return "big"
		}
		return "small"
	})
	if v, _ := names.Find(3); v != "big" {
		t.Errorf("expected mapped value for key 3 to be big, is %q", v)
	}
	chosen := ChooseMap(m, func(k uint32, v int) (string, bool) {
		if k%2 == 1 {
			return "odd", true
		}
		return "", false
	})
	if chosen.Len() != 2 || !chosen.Contains(1) || !chosen.Contains(3) {
		t.Errorf("expected choose to keep odd keys, got %v", chosen)
	}
	mapped, rest := MapPartition(m, func(_ uint32, v int) (int, bool) {
		if v%2 == 0 {
			return v / 2, true
		}
		return 0, false
	})
	if mapped.Len() != 2 || rest.Len() != 2 {
		t.Errorf("unexpected map-partition sizes %d/%d", mapped.Len(), rest.Len())
	}
	if v, _ := mapped.Find(4); v != 8 {
		t.Errorf("expected mapped half to hold 4↦8, is %d", v)
	}
	if v, _ := rest.Find(3); v != 9 {
		t.Errorf("expected rest half to hold 3↦9 unchanged, is %d", v)
	}
}

func TestMapFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patricia")
	defer teardown()
	//
	m := MapOf(
		Pair[uint32, int]{1, 10},
		Pair[uint32, int]{2, 20},
		Pair[uint32, int]{3, 30},
	)
	sum := FoldMap(m, 0, func(acc int, _ uint32, v int) int { return acc + v })
	if sum != 60 {
		t.Errorf("expected fold sum to be 60, is %d", sum)
	}
	keysBack := FoldMapBack(m, []uint32{}, func(acc []uint32, k uint32, _ int) []uint32 {
		return append(acc, k)
	})
	if len(keysBack) != 3 || keysBack[0] != 3 || keysBack[2] != 1 {
		t.Errorf("expected backward fold to see keys 3, 2, 1; got %v", keysBack)
	}
}

func TestMapString(t *testing.T) {
	m := MapOf(Pair[uint32, string]{2, "b"}, Pair[uint32, string]{1, "a"})
	if m.String() != "map{1↦a 2↦b}" {
		t.Errorf("expected map{1↦a 2↦b}, is %q", m.String())
	}
}
