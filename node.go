package skiplist

// node holds one entry and its forward pointers, one per level it participates in.
// len(right) is the node's height and never changes while the node is linked.
type node[K, V any] struct {
	key   K
	val   V
	right []*node[K, V]
}

const (
	MaxLevel = 32
	P        = 1.0 / 2.0
)

func newNode[K, V any](key K, val V, height int) *node[K, V] {
	return &node[K, V]{
		key:   key,
		val:   val,
		right: make([]*node[K, V], height),
	}
}

func (n *node[K, V]) height() int {
	return len(n.right)
}

// levelIndex is the sentinel. It owns the entry point into every level and
// carries no entry of its own; len(right) is the list's level count.
type levelIndex[K, V any] struct {
	right []*node[K, V]
}

func newLevelIndex[K, V any]() *levelIndex[K, V] {
	return &levelIndex[K, V]{right: make([]*node[K, V], 1)}
}

// grow extends the index to height levels. Existing entry points are kept and
// the new levels start empty.
func (idx *levelIndex[K, V]) grow(height int) {
	if height <= len(idx.right) {
		return
	}
	idx.right = append(idx.right, make([]*node[K, V], height-len(idx.right))...)
}

func (idx *levelIndex[K, V]) levels() int {
	return len(idx.right)
}
