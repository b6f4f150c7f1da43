package skiplist

func (s *SkipList[K, V]) acquireNode(key K, val V, height int) *node[K, V] {
	pooled, _ := s.nodePool.Get().(*node[K, V])
	if pooled == nil {
		return newNode(key, val, height)
	}

	if cap(pooled.right) < height {
		pooled.right = make([]*node[K, V], height)
	} else {
		pooled.right = pooled.right[:height]
	}

	pooled.key = key
	pooled.val = val
	return pooled
}

// releaseNode drops every reference the node holds so neither the caller's
// key/value nor other nodes are kept alive by the pool.
func (s *SkipList[K, V]) releaseNode(n *node[K, V]) {
	if n == nil {
		return
	}

	var zeroK K
	var zeroV V
	n.key = zeroK
	n.val = zeroV

	n.right = n.right[:cap(n.right)]
	for i := range n.right {
		n.right[i] = nil
	}

	s.nodePool.Put(n)
}
