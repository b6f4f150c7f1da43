// Package skiplist provides an ordered in-memory map backed by a skip list.
//
// Entries are kept sorted by a caller supplied Comparator. Insertion, lookup
// and removal take expected O(log n) comparisons. A SkipList is not safe for
// concurrent use; callers sharing one across goroutines must serialize every
// operation, for example with a single sync.Mutex.
package skiplist

import (
	"cmp"
	"log/slog"
	"sync"
)

// SkipList is an ordered map from K to V.
type SkipList[K, V any] struct {
	cmp      Comparator[K]
	udata    any
	index    *levelIndex[K, V]
	first    *node[K, V]
	length   int
	maxLevel int
	levels   LevelSource
	logger   *slog.Logger
	metrics  metrics
	nodePool sync.Pool
	mut      mutatorImpl[K, V]
	closed   bool

	// update is the per-level predecessor vector filled by locate. Each slot
	// points at the forward array (the index's or a node's) to splice into.
	update []*[]*node[K, V]
}

// New returns an empty SkipList ordered by compare. udata is handed to every
// compare call.
func New[K, V any](compare Comparator[K], udata any, opts ...Option) (*SkipList[K, V], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.levels == nil {
		cfg.levels = newRNG()
	}

	s := &SkipList[K, V]{
		cmp:      compare,
		udata:    udata,
		index:    newLevelIndex[K, V](),
		maxLevel: cfg.maxLevel,
		levels:   cfg.levels,
		logger:   cfg.logger,
		update:   make([]*[]*node[K, V], cfg.maxLevel),
	}
	s.mut = mutatorImpl[K, V]{s: s}
	return s, nil
}

// NewOrdered returns an empty SkipList ordered by cmp.Compare.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) *SkipList[K, V] {
	s, _ := New[K, V](OrderedComparator[K](), nil, opts...)
	return s
}

func (s *SkipList[K, V]) compare(a, b K) int {
	s.metrics.incComparison()
	return s.cmp(a, b, s.udata)
}

// find descends from the top level, moving right while the next key is
// smaller than key and dropping a level otherwise. It stops at the first
// node holding key.
func (s *SkipList[K, V]) find(key K) *node[K, V] {
	right := s.index.right
	for level := len(s.index.right) - 1; level >= 0; level-- {
		for next := right[level]; next != nil; next = right[level] {
			c := s.compare(next.key, key)
			if c == 0 {
				return next
			}
			if c > 0 {
				break
			}
			right = next.right
		}
	}
	return nil
}

// Len returns the number of entries.
func (s *SkipList[K, V]) Len() int {
	return s.length
}

// Levels returns the number of levels currently indexed. It never shrinks
// while the list is open.
func (s *SkipList[K, V]) Levels() int {
	return s.index.levels()
}

// Get returns the value stored for key.
// The boolean is false if the key is absent or nil.
func (s *SkipList[K, V]) Get(key K) (V, bool) {
	if s.closed || isNilKey(key) {
		var zero V
		return zero, false
	}
	n := s.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Lookup is Get with an error instead of a flag: ErrNilKey, ErrClosed or
// ErrKeyNotFound.
func (s *SkipList[K, V]) Lookup(key K) (V, error) {
	var zero V
	if s.closed {
		return zero, ErrClosed
	}
	if isNilKey(key) {
		return zero, ErrNilKey
	}
	n := s.find(key)
	if n == nil {
		return zero, ErrKeyNotFound
	}
	return n.val, nil
}

// Contains reports whether key is present.
func (s *SkipList[K, V]) Contains(key K) bool {
	_, ok := s.Get(key)
	return ok
}

// Put stores value under key. If the key was already present its value is
// replaced and the previous value is returned with replaced set to true; the
// structure is left unchanged in that case.
func (s *SkipList[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	if s.closed {
		return old, false, ErrClosed
	}
	if isNilKey(key) {
		return old, false, ErrNilKey
	}
	old, replaced = s.mut.put(key, value)
	return old, replaced, nil
}

// PutEntry stores e.Value under e.Key.
func (s *SkipList[K, V]) PutEntry(e Entry[K, V]) error {
	_, _, err := s.Put(e.Key, e.Value)
	return err
}

// Remove deletes key and returns the value it held.
// The boolean is false if the key was absent or nil.
func (s *SkipList[K, V]) Remove(key K) (V, bool) {
	e, ok := s.RemoveEntry(key)
	return e.Value, ok
}

// RemoveEntry deletes key and returns the stored pair. The returned Key is the
// one given to Put, which may be a different value comparing equal to key.
func (s *SkipList[K, V]) RemoveEntry(key K) (Entry[K, V], bool) {
	if s.closed || isNilKey(key) {
		return Entry[K, V]{}, false
	}
	return s.mut.remove(key)
}

// Min returns the entry with the smallest key.
func (s *SkipList[K, V]) Min() (K, V, bool) {
	if s.first == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return s.first.key, s.first.val, true
}

// Clear removes every entry. The level count is kept.
func (s *SkipList[K, V]) Clear() {
	if s.closed {
		return
	}
	removed := s.length

	n := s.index.right[0]
	for n != nil {
		next := n.right[0]
		s.releaseNode(n)
		n = next
	}
	for i := range s.index.right {
		s.index.right[i] = nil
	}

	s.first = nil
	s.length = 0
	s.logger.Debug("skiplist: cleared", slog.Int("removed", removed), slog.Int("levels", s.index.levels()))
}

// Close removes every entry and releases the level index. A closed list
// rejects Put with ErrClosed and reports every key as absent.
func (s *SkipList[K, V]) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.Clear()
	s.index.right = nil
	s.update = nil
	s.closed = true
	s.logger.Debug("skiplist: closed")
	return nil
}
