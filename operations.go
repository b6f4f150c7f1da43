package skiplist

import "log/slog"

// mutatorImpl groups the mutating algorithms. Both run in two phases: locate
// fills the predecessor vector, then a separate pass splices or unlinks.
type mutatorImpl[K, V any] struct {
	s *SkipList[K, V]
}

// locate records, for every current level, the forward array whose slot at
// that level is the last one before key. The descent always reaches level 0,
// even after key is matched higher up, so a match has its predecessor
// recorded on every level it participates in.
func (u *mutatorImpl[K, V]) locate(key K) (update []*[]*node[K, V], found *node[K, V]) {
	s := u.s
	update = s.update[:s.index.levels()]

	right := &s.index.right
	for level := len(update) - 1; level >= 0; level-- {
		for {
			next := (*right)[level]
			if next == nil || next == found {
				break
			}
			c := s.compare(next.key, key)
			if c > 0 {
				break
			}
			if c == 0 {
				found = next
				break
			}
			right = &next.right
		}
		update[level] = right
	}
	return update, found
}

// put inserts or updates the value for the given key.
// It returns the previous value and true if the key existed, otherwise zero value and false.
func (u *mutatorImpl[K, V]) put(key K, value V) (V, bool) {
	s := u.s

	update, found := u.locate(key)
	if found != nil {
		old := found.val
		found.val = value
		s.metrics.incUpdate()
		return old, true
	}

	height := clampLevel(s.levels.RandomLevel(s.maxLevel), s.maxLevel)
	if from := s.index.levels(); height > from {
		s.index.grow(height)
		update = s.update[:height]
		for level := from; level < height; level++ {
			update[level] = &s.index.right
		}
		s.metrics.incLevelGrowth()
		s.logger.Debug("skiplist: level grown", slog.Int("from", from), slog.Int("to", height))
	}

	n := s.acquireNode(key, value, height)
	for level := 0; level < height; level++ {
		pred := update[level]
		n.right[level] = (*pred)[level]
		(*pred)[level] = n
		if linkHook != nil {
			linkHook(level, n)
		}
	}

	if update[0] == &s.index.right {
		s.first = n
	}
	s.length++
	s.metrics.incInsert()

	var zero V
	return zero, false
}

// remove unlinks the node holding key from every level it participates in
// and recycles it.
func (u *mutatorImpl[K, V]) remove(key K) (Entry[K, V], bool) {
	s := u.s

	update, target := u.locate(key)
	if target == nil {
		return Entry[K, V]{}, false
	}

	for level := 0; level < target.height(); level++ {
		pred := update[level]
		if (*pred)[level] != target {
			continue
		}
		(*pred)[level] = target.right[level]
		if unlinkHook != nil {
			unlinkHook(level, target)
		}
	}

	if s.first == target {
		s.first = target.right[0]
	}
	s.length--
	s.metrics.incRemoval()

	removed := Entry[K, V]{Key: target.key, Value: target.val}
	s.releaseNode(target)
	return removed, true
}
