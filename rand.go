package skiplist

import (
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// LevelSource samples the height of a newly inserted node. Implementations
// must return a value in [1, maxLevel]; out of range results are clamped.
type LevelSource interface {
	RandomLevel(maxLevel int) int
}

// RNG is a xorshift64* generator that promotes levels by fair coin flips.
// It is not safe for concurrent use.
type RNG struct {
	seed uint64
}

func newRNG() *RNG {
	return newRNGWithSeed(newRandomSeed())
}

func newRNGWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

func (r *RNG) nextRandom64() uint64 {
	x := r.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.seed = x
	return x * 2685821657736338717
}

// RandomLevel flips coins until the first tails: each zero bit read from the
// low end of a random word is a head. The result is at least 1, so every node
// is reachable at level 0.
func (r *RNG) RandomLevel(maxLevel int) int {
	level := bits.TrailingZeros64(r.nextRandom64()) + 1
	return clampLevel(level, maxLevel)
}

func clampLevel(level, maxLevel int) int {
	if level < 1 {
		return 1
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
