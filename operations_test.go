package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScripted(t *testing.T, heights ...int) *SkipList[int, int] {
	t.Helper()
	return NewOrdered[int, int](WithLevelSource(&fixedLevels{heights: heights}))
}

func TestPutGrowsLevelIndex(t *testing.T) {
	sl := newScripted(t, 1, 4, 2)

	sl.Put(10, 100)
	require.Equal(t, 1, sl.Levels())

	sl.Put(20, 200)
	require.Equal(t, 4, sl.Levels())
	tall := sl.index.right[0].right[0]
	require.Equal(t, 20, tall.key)
	for level := 1; level < 4; level++ {
		assert.Same(t, tall, sl.index.right[level], "new level %d must start at the new node", level)
		assert.Nil(t, tall.right[level])
	}

	sl.Put(15, 150)
	assert.Equal(t, 4, sl.Levels())
	assert.Equal(t, []int{10, 15, 20}, levelKeys(sl, 0))
	assert.Equal(t, []int{15, 20}, levelKeys(sl, 1))
	assert.Equal(t, []int{20}, levelKeys(sl, 2))
	assert.Equal(t, []int{20}, levelKeys(sl, 3))
	assert.Equal(t, uint64(1), sl.Stats().LevelGrowths)
	checkInvariants(t, sl)
}

func TestReplaceLeavesStructureUntouched(t *testing.T) {
	levels := &fixedLevels{heights: []int{3, 1}}
	sl := NewOrdered[int, int](WithLevelSource(levels))

	sl.Put(1, 1)
	sl.Put(2, 2)
	before := sl.LevelCounts()
	draws := levels.idx

	old, replaced, err := sl.Put(2, 22)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 2, old)
	assert.Equal(t, before, sl.LevelCounts())
	assert.Equal(t, draws, levels.idx, "replacing must not sample a height")
	checkInvariants(t, sl)
}

func TestZeroHeightIsClampedToOne(t *testing.T) {
	sl := newScripted(t, 0, -3, 99)
	sl.maxLevel = 8
	sl.update = make([]*[]*node[int, int], 8)

	sl.Put(1, 1)
	sl.Put(2, 2)
	sl.Put(3, 3)

	for _, k := range []int{1, 2, 3} {
		v, ok := sl.Get(k)
		require.True(t, ok, "key %d must be reachable", k)
		assert.Equal(t, k, v)
	}
	assert.Equal(t, 8, sl.Levels())
	checkInvariants(t, sl)
}

func TestLinkAndUnlinkTouchEveryLevelOfTheNode(t *testing.T) {
	t.Cleanup(func() {
		linkHook = nil
		unlinkHook = nil
	})

	sl := newScripted(t, 2, 3, 1)
	sl.Put(1, 1)
	sl.Put(3, 3)

	var linked []int
	linkHook = func(level int, _ any) {
		linked = append(linked, level)
	}
	sl.Put(2, 2)
	assert.Equal(t, []int{0}, linked)

	var unlinked []int
	unlinkHook = func(level int, n any) {
		unlinked = append(unlinked, level)
		assert.Equal(t, 3, n.(*node[int, int]).key)
	}
	_, ok := sl.Remove(3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, unlinked)
	assert.Equal(t, 3, sl.Levels(), "levels never shrink")
	assert.Equal(t, []int{2, 1, 0}, sl.LevelCounts())
	checkInvariants(t, sl)
}

func TestRemoveTallNodeRepairsEveryLevel(t *testing.T) {
	sl := newScripted(t, 1, 3, 2, 1, 3)
	for _, k := range []int{10, 20, 30, 40, 50} {
		sl.Put(k, k)
	}
	checkInvariants(t, sl)

	_, ok := sl.Remove(20)
	require.True(t, ok)
	checkInvariants(t, sl)
	assert.Equal(t, []int{30, 50}, levelKeys(sl, 1))
	assert.Equal(t, []int{50}, levelKeys(sl, 2))

	_, ok = sl.Remove(50)
	require.True(t, ok)
	checkInvariants(t, sl)
	assert.Nil(t, sl.index.right[2])
	assert.Equal(t, []int{30}, levelKeys(sl, 1))

	// an empty level is skipped by searches
	v, ok := sl.Get(40)
	assert.True(t, ok)
	assert.Equal(t, 40, v)
}

func TestSearchUsesOneComparisonPerStep(t *testing.T) {
	sl := newScripted(t, 1)

	sl.Get(1)
	assert.Zero(t, sl.Stats().Comparisons, "an empty list needs no comparisons")

	for k := 1; k <= 5; k++ {
		sl.Put(k, k)
	}

	tests := []struct {
		key  int
		want uint64
	}{
		{key: 0, want: 1},
		{key: 1, want: 1},
		{key: 3, want: 3},
		{key: 5, want: 5},
		{key: 6, want: 5},
	}
	for _, tt := range tests {
		before := sl.Stats().Comparisons
		sl.Get(tt.key)
		assert.Equal(t, tt.want, sl.Stats().Comparisons-before, "Get(%d)", tt.key)
	}
}

func TestSearchStopsAtHigherLevelMatch(t *testing.T) {
	sl := newScripted(t, 1, 1, 1, 1, 3)
	for k := 1; k <= 5; k++ {
		sl.Put(k, k)
	}

	before := sl.Stats().Comparisons
	v, ok := sl.Get(5)
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, uint64(1), sl.Stats().Comparisons-before)
}

func TestLocateRecordsPredecessors(t *testing.T) {
	sl := newScripted(t, 2, 1, 3, 1)
	for _, k := range []int{10, 20, 30, 40} {
		sl.Put(k, k)
	}

	update, found := sl.mut.locate(35)
	require.Nil(t, found)
	require.Len(t, update, 3)

	n30 := sl.index.right[2]
	require.Equal(t, 30, n30.key)
	assert.Same(t, &n30.right, update[2])
	assert.Same(t, &n30.right, update[1])
	assert.Same(t, &n30.right, update[0])

	update, found = sl.mut.locate(30)
	require.NotNil(t, found)
	assert.Equal(t, 30, found.key)
	n10 := sl.index.right[1]
	require.Equal(t, 10, n10.key)
	assert.Same(t, &sl.index.right, update[2])
	assert.Same(t, &n10.right, update[1])
	n20 := n10.right[0]
	require.Equal(t, 20, n20.key)
	assert.Same(t, &n20.right, update[0])
}
