package skiplist

// Stats is a snapshot of a list's counters.
type Stats struct {
	Len          int
	Levels       int
	Comparisons  uint64
	LevelGrowths uint64
	Inserts      uint64
	Updates      uint64
	Removals     uint64
}

type metrics struct {
	comparisons  uint64
	levelGrowths uint64
	inserts      uint64
	updates      uint64
	removals     uint64
}

func (m *metrics) incComparison() {
	m.comparisons++
}

func (m *metrics) incLevelGrowth() {
	m.levelGrowths++
}

func (m *metrics) incInsert() {
	m.inserts++
}

func (m *metrics) incUpdate() {
	m.updates++
}

func (m *metrics) incRemoval() {
	m.removals++
}

// Stats reports the list's size, level count and operation counters.
func (s *SkipList[K, V]) Stats() Stats {
	return Stats{
		Len:          s.length,
		Levels:       s.Levels(),
		Comparisons:  s.metrics.comparisons,
		LevelGrowths: s.metrics.levelGrowths,
		Inserts:      s.metrics.inserts,
		Updates:      s.metrics.updates,
		Removals:     s.metrics.removals,
	}
}
