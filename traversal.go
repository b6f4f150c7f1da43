package skiplist

// walk visits the nodes participating at level in key order until fn
// returns false.
func (s *SkipList[K, V]) walk(level int, fn func(n *node[K, V]) bool) {
	if level < 0 || level >= s.index.levels() {
		return
	}
	for n := s.index.right[level]; n != nil; n = n.right[level] {
		if !fn(n) {
			return
		}
	}
}

// LevelCounts returns the number of nodes participating at each level,
// index 0 being the bottom level.
func (s *SkipList[K, V]) LevelCounts() []int {
	counts := make([]int, s.index.levels())
	for level := range counts {
		s.walk(level, func(*node[K, V]) bool {
			counts[level]++
			return true
		})
	}
	return counts
}

// MaxHeight returns the height of the tallest stored node, or 0 when empty.
func (s *SkipList[K, V]) MaxHeight() int {
	counts := s.LevelCounts()
	for level := len(counts) - 1; level >= 0; level-- {
		if counts[level] > 0 {
			return level + 1
		}
	}
	return 0
}
